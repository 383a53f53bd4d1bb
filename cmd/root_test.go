package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// initConfig must load the file given via --config, not the default under
// $HOME, and saves must go back to that same file.
func TestInitConfigHonorsConfigFlag(t *testing.T) {
	dir := t.TempDir()
	vault := t.TempDir()
	path := filepath.Join(dir, "alt.yaml")
	if err := os.WriteFile(path, []byte("vaultdir: "+vault+"\n"), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	cfgFile = path
	defer func() {
		cfgFile = ""
		viper.Reset()
	}()

	initConfig()

	if cfgError != nil {
		t.Fatalf("initConfig load error: %v", cfgError)
	}
	if appCfg.VaultDir != vault {
		t.Fatalf("--config file ignored: expected vaultdir %q, got %q", vault, appCfg.VaultDir)
	}
	if appCfg.GetConfigPath() != path {
		t.Fatalf("expected config path %q, got %q", path, appCfg.GetConfigPath())
	}
}

func TestInitConfigAppliesVaultOverrideWithoutSaving(t *testing.T) {
	dir := t.TempDir()
	override := t.TempDir()
	path := filepath.Join(dir, "alt.yaml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	cfgFile = path
	vaultOverride = override
	defer func() {
		cfgFile = ""
		vaultOverride = ""
		viper.Reset()
	}()

	initConfig()

	if appCfg.VaultDir != override {
		t.Fatalf("expected override %q, got %q", override, appCfg.VaultDir)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(onDisk) != 0 {
		t.Fatalf("--vault must not persist, config file now holds %q", onDisk)
	}
}
