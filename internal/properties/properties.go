package properties

import (
	"os"
	"path/filepath"
	"strconv"
)

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func DataPath(subDir string) string {
	return filepath.Join(RootPath(), "data", subDir)
}

func CM1Path() string {
	return DataPath("cm1")
}

func GroundTruthPath() string {
	return DataPath("ground_truth")
}

func NDVIPath() string {
	return DataPath("ndvi")
}

func ResultPath() string {
	return DataPath("result")
}

func LogMode() string {
	return os.Getenv("LOG_MODE")
}

func PatchSize() int {
	return intFromEnv("PATCH_SIZE", 256)
}

func PatchStride() int {
	return intFromEnv("PATCH_STRIDE", 128)
}

func RemapWorkers() int {
	return intFromEnv("REMAP_WORKERS", 1)
}

func SplitSeed() int64 {
	return int64(intFromEnv("SPLIT_SEED", 42))
}

func ValRatio() float64 {
	value, err := strconv.ParseFloat(os.Getenv("VAL_RATIO"), 64)
	if err != nil {
		return 0.2
	}
	return value
}

// AugmentSeed reports the seed for patch augmentation. Without one the
// process-wide generator is used.
func AugmentSeed() (uint64, bool) {
	value, err := strconv.ParseUint(os.Getenv("AUGMENT_SEED"), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func intFromEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

type Color struct {
	R, G, B uint8
}

// ColorMap is keyed by ground-truth class.
var ColorMap = map[uint8]Color{
	0: {34, 139, 34},
	1: {255, 255, 255},
	2: {64, 64, 64},
}

var ClassNames = map[uint8]string{
	0: "clear",
	1: "cloud",
	2: "shadow",
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}
func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
