//go:build !mobile

package utils

import "testing"

func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

func TestIsMobile_Emulated(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Errorf("IsMobile() should return true with %s=1", MobileEmulateEnv)
	}
}
