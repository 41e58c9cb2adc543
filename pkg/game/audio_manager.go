package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/folio/pkg/sequencer"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DefaultSampleRate 音频上下文采样率
const DefaultSampleRate = 48000

// AudioManager 音频管理器
// 职责：
//   - 持有 ebiten 音频上下文（可为 nil，此时所有播放静默跳过）
//   - 首次使用时合成加载界面的循环音效
//   - 通过 LoaderCue() 向 sequencer 暴露 Start/Stop 接口
type AudioManager struct {
	audioContext *audio.Context
	enabled      bool
	volume       float64

	cuePlayer *audio.Player
	cueFailed bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，nil 表示无音频设备
//   - enabled: 是否启用音效
func NewAudioManager(ctx *audio.Context, enabled bool) *AudioManager {
	return &AudioManager{
		audioContext: ctx,
		enabled:      enabled,
		volume:       0.7,
	}
}

// Enabled reports whether the manager will try to play anything.
func (am *AudioManager) Enabled() bool {
	return am.enabled && am.audioContext != nil
}

// SetVolume 设置音量 (0.0 ~ 1.0)
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = min(max(volume, 0), 1)
	if am.cuePlayer != nil {
		am.cuePlayer.SetVolume(am.volume)
	}
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// LoaderCue returns the loader sound as a sequencer cue.
func (am *AudioManager) LoaderCue() sequencer.Cue {
	return loaderCue{am}
}

// PlayCue 从头播放加载音效（已在播放时重新开始）
func (am *AudioManager) PlayCue() bool {
	player := am.getCuePlayer()
	if player == nil {
		return false
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind loader cue: %v", err)
	}
	player.SetVolume(am.volume)
	player.Play()
	return true
}

// StopCue 停止并重置加载音效
func (am *AudioManager) StopCue() {
	if am.cuePlayer == nil {
		return
	}
	am.cuePlayer.Pause()
	if err := am.cuePlayer.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind loader cue: %v", err)
	}
}

// IsCuePlaying reports whether the loader cue is audible.
func (am *AudioManager) IsCuePlaying() bool {
	return am.cuePlayer != nil && am.cuePlayer.IsPlaying()
}

// decodedStream 是 ebiten 各解码器返回的流
type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// cueDecoder 按扩展名选择解码器
func cueDecoder(path string) (func(sampleRate int, src io.Reader) (decodedStream, error), error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return func(sr int, src io.Reader) (decodedStream, error) { return mp3.DecodeWithSampleRate(sr, src) }, nil
	case ".ogg":
		return func(sr int, src io.Reader) (decodedStream, error) { return vorbis.DecodeWithSampleRate(sr, src) }, nil
	case ".wav":
		return func(sr int, src io.Reader) (decodedStream, error) { return wav.DecodeWithSampleRate(sr, src) }, nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q (supported: .mp3, .ogg, .wav)", ext)
	}
}

// LoadCueFile replaces the synthesized loader cue with a looping audio
// file. Without an audio context the file is only checked for a supported
// extension.
func (am *AudioManager) LoadCueFile(path string) error {
	decode, err := cueDecoder(path)
	if err != nil {
		return err
	}
	if !am.Enabled() {
		log.Printf("[AudioManager] Audio disabled, ignoring cue file %s", path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read cue file %s: %w", path, err)
	}
	stream, err := decode(am.audioContext.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode cue file %s: %w", path, err)
	}
	player, err := am.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return fmt.Errorf("failed to create cue player for %s: %w", path, err)
	}

	am.Close()
	am.cuePlayer = player
	am.cueFailed = false
	log.Printf("[AudioManager] Loaded cue file %s", path)
	return nil
}

// getCuePlayer 获取或合成加载音效播放器
func (am *AudioManager) getCuePlayer() *audio.Player {
	if !am.Enabled() || am.cueFailed {
		return nil
	}
	if am.cuePlayer != nil {
		return am.cuePlayer
	}

	pcm, err := SynthesizeCue(am.audioContext.SampleRate(), CueDuration)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to synthesize loader cue: %v", err)
		am.cueFailed = true
		return nil
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := am.audioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create loader cue player: %v", err)
		am.cueFailed = true
		return nil
	}
	am.cuePlayer = player
	return player
}

// Close 停止并释放播放器
func (am *AudioManager) Close() {
	if am.cuePlayer == nil {
		return
	}
	am.cuePlayer.Pause()
	if err := am.cuePlayer.Close(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to close loader cue: %v", err)
	}
	am.cuePlayer = nil
}

type loaderCue struct {
	am *AudioManager
}

func (c loaderCue) Start() { c.am.PlayCue() }
func (c loaderCue) Stop()  { c.am.StopCue() }
