package util

import (
	"os"
	"strings"
)

const machineIDPath = "/etc/machine-id"

func GetMachineID() string {
	if machineID := strings.TrimSpace(os.Getenv("MACHINE_ID")); machineID != "" {
		return machineID
	}
	data, err := os.ReadFile(machineIDPath)
	if err != nil {
		return "unknown-machine-id"
	}
	if machineID := strings.TrimSpace(string(data)); machineID != "" {
		return machineID
	}
	return "unknown-machine-id"
}
