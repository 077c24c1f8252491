package config

import (
	"encoding/json"
	"testing"
)

func TestStripLineComments(t *testing.T) {
	in := []byte("// header\n{\n  // inline doc\n  \"database_path\": \"x.sqlite\"\n}\n")
	var cfg Config
	if err := json.Unmarshal(stripLineComments(in), &cfg); err != nil {
		t.Fatalf("unmarshal after stripping: %v", err)
	}
	if cfg.DatabasePath != "x.sqlite" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "x.sqlite")
	}
}

func TestConfigTemplateParses(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal(stripLineComments([]byte(configTemplate)), &cfg); err != nil {
		t.Fatalf("the annotated template must parse once stripped: %v", err)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("template DatabasePath = %q, want empty", cfg.DatabasePath)
	}
}
