package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

// ==================== ORDER ID ====================

// GenerateOrderID returns a human readable order reference.
// Format: CINIX-YYYYMMDD-HHMMSS-RANDOM
func GenerateOrderID(now time.Time) string {
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("CINIX-%s-%s-%s", datePart, timePart, randomPart)
}
