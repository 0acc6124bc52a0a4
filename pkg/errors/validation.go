package errors

import (
	"regexp"
	"strings"
)

// MaxDimension bounds the width and height accepted for a layout canvas.
const MaxDimension = 20000

// ValidateDimensions validates a layout canvas size.
// Both sides must be positive and no larger than [MaxDimension].
func ValidateDimensions(width, height float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %gx%g", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %d), got %gx%g", MaxDimension, width, height)
	}
	return nil
}

// ValidateMongoURI checks that uri uses a MongoDB connection scheme.
func ValidateMongoURI(uri string) error {
	if uri == "" {
		return New(ErrCodeInvalidInput, "mongo URI cannot be empty")
	}
	if !strings.HasPrefix(uri, "mongodb://") && !strings.HasPrefix(uri, "mongodb+srv://") {
		return New(ErrCodeInvalidInput, "mongo URI must use mongodb or mongodb+srv scheme")
	}
	return nil
}

// collectionNameRegex matches MongoDB database and collection names we accept.
var collectionNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateCollectionName validates a MongoDB database or collection name.
func ValidateCollectionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "collection name cannot be empty")
	}
	if len(name) > 120 {
		return New(ErrCodeInvalidInput, "collection name too long (max 120 characters)")
	}
	if strings.HasPrefix(name, "system.") {
		return New(ErrCodeInvalidInput, "collection name cannot use the system. prefix")
	}
	if !collectionNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid collection name: %q", name)
	}
	return nil
}

// ValidateRedisAddr validates a host:port address for the Redis cache.
func ValidateRedisAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "redis address cannot be empty")
	}
	i := strings.LastIndex(addr, ":")
	if i <= 0 || i == len(addr)-1 {
		return New(ErrCodeInvalidInput, "redis address must be host:port, got %q", addr)
	}
	for _, r := range addr[i+1:] {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidInput, "redis port must be numeric, got %q", addr[i+1:])
		}
	}
	return nil
}
