package config

import "testing"

func TestNewConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("PLUGIN_REQUIRE_QUESTIONS", "true")
	t.Setenv("DEBUG", "1")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.UploadDir != "upload" || cfg.Database.Path != "survey.sqlite" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.Database.Driver != "sqlite" || !cfg.Plugins.RequireQuestions || !cfg.Debug {
		t.Fatalf("env overrides: %+v", cfg)
	}
}
