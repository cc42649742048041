package util

import (
	"os"
	"testing"
)

func TestGetRandStringVariousLengths(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"Zero length", 0},
		{"Single character", 1},
		{"Small string", 5},
		{"Client id suffix", 6},
		{"Large string", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetRandString(tt.length)

			if len(result) != tt.length {
				t.Errorf("GetRandString(%d) = length %d, expected %d", tt.length, len(result), tt.length)
			}

			for i, char := range result {
				if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')) {
					t.Errorf("GetRandString(%d) contains non-letter at position %d: %c", tt.length, i, char)
				}
			}
		})
	}
}

func TestRegisterNewConfigListener(t *testing.T) {
	config_listeners = []func(){}

	called1 := false
	called2 := false

	listener1 := func() { called1 = true }
	listener2 := func() { called2 = true }

	RegisterNewConfigListener(listener1)
	RegisterNewConfigListener(listener2)

	if len(config_listeners) != 2 {
		t.Errorf("Expected 2 listeners, got %d", len(config_listeners))
	}

	// duplicate registrations are ignored
	RegisterNewConfigListener(listener1)

	if len(config_listeners) != 2 {
		t.Errorf("Expected 2 listeners after duplicate addition, got %d", len(config_listeners))
	}

	OnNewConfig()

	if !called1 || !called2 {
		t.Error("OnNewConfig should call all registered listeners")
	}
}

func TestSetupConfigDefaults(t *testing.T) {
	SetupConfig()

	brokerURI := Config.GetString("Broker_URI")
	if brokerURI == "" {
		t.Error("Broker_URI default should not be empty")
	}

	if Config.GetBool("Mqtt_enabled") {
		t.Error("Mqtt_enabled should default to false")
	}

	port := Config.GetInt("Details_port")
	if port <= 0 {
		t.Errorf("Details_port default should be positive, got %d", port)
	}

	logFile := Config.GetString("Event_log_file")
	if logFile == "" {
		t.Error("Event_log_file default should not be empty")
	}

	prefix := Config.GetString("Topic_prefix")
	if prefix == "" {
		t.Error("Topic_prefix default should not be empty")
	}
}

func TestSetupConfigFileSearch(t *testing.T) {
	tempConfigContent := `{
		"test_key": "test_value",
		"test_number": 42
	}`

	configFile, err := os.CreateTemp(".", "pulsehome*.json")
	if err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	defer func() { _ = os.Remove(configFile.Name()) }() //nolint:errcheck // test cleanup

	if _, err := configFile.WriteString(tempConfigContent); err != nil {
		t.Fatalf("Failed to write to temp config file: %v", err)
	}
	configFile.Close()

	expectedName := "pulsehome.json"
	_ = os.Rename(configFile.Name(), expectedName) //nolint:errcheck // test setup
	defer func() { _ = os.Remove(expectedName) }() //nolint:errcheck // test cleanup

	SetupConfig()

	testValue := Config.GetString("test_key")
	if testValue != "test_value" {
		t.Errorf("Config file test_key = %s, expected test_value", testValue)
	}

	testNumber := Config.GetInt("test_number")
	if testNumber != 42 {
		t.Errorf("Config file test_number = %d, expected 42", testNumber)
	}
}
