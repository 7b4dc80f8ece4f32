package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"mediflow-service/internal/pkg/constvars"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// GenerateWalkInID issues a walk-in identifier WALKIN-<hhmmss>-<3 digits>.
// The 3-digit suffix is random, so two ids generated in the same second can
// still collide with birthday-bound probability.
func GenerateWalkInID() (string, error) {
	suffix, err := randomDigits(3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", constvars.WalkInIDPrefix, time.Now().Format("150405"), suffix), nil
}

func randomDigits(length int) (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))

	out := make([]byte, length)
	for i := range out {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = digits[num.Int64()]
	}
	return string(out), nil
}

// GenerateObjectName builds a unique object-store key under the given folder,
// keeping the original file extension.
func GenerateObjectName(folder, filename string) string {
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(filename))
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateTestItemID() string {
	return uuid.NewString()
}
