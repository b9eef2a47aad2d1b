package domain

import (
	"database/sql"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"runtime"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/silinternational/inspection-api/log"
)

var (
	// Logger is the informational logger. It writes to stderr, leaving stdout to command output.
	Logger *logrus.Logger

	// ErrLogger is the error logger, normally set to stderr. Entries at warning level and above are also sent to
	// Sentry when SENTRY_DSN is set.
	ErrLogger *logrus.Logger

	// SentryHook is nil unless SENTRY_DSN is set
	SentryHook *log.SentryHook

	// GitCommitHash is set at build time
	GitCommitHash string
)

var AllowedPhotoTypes = []string{
	"image/gif",
	"image/jpeg",
	"image/png",
	"image/webp",
}

// Context keys
const (
	ContextKeyTx = "tx"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Event payload keys
const (
	EventPayloadID      = "id"
	EventPayloadPartKey = "part_key"
	EventPayloadPhotos  = "photos"
)

const MaxPhotoSize = 1024 * 1024 * 10 // 10 Megabytes

// Event Kinds
const (
	EventApiInspectionDamageSaved = "api:inspection:damage:saved"
	EventApiInspectionDamageReset = "api:inspection:damage:reset"
	EventApiInspectionDeleted     = "api:inspection:deleted"
)

// Env Holds the values of environment variables
var Env struct {
	GoEnv    string `default:"development" split_words:"true"`
	AppName  string `default:"Inspection" split_words:"true"`
	LogLevel string `default:"info" split_words:"true"`

	ListenerDelayMilliseconds int `default:"1000" split_words:"true"`
	ListenerMaxRetries        int `default:"10" split_words:"true"`
	ListenerWaitSeconds       int `default:"60" split_words:"true"`

	AwsRegion           string `default:"us-east-1" split_words:"true"`
	AwsS3Endpoint       string `split_words:"true"`
	AwsS3DisableSSL     bool   `split_words:"true"`
	AwsS3Bucket         string `default:"inspection-photos" split_words:"true"`
	AwsS3ACL            string `default:"private" envconfig:"AWS_S3_ACL"`
	AwsS3URLLifeMinutes int    `default:"60" envconfig:"AWS_S3_URL_LIFE_MINUTES"`
	AwsAccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID"`
	AwsSecretAccessKey  string `split_words:"true"`

	// PhotoKeyPrefix is prepended to the storage key of every inspection photo
	PhotoKeyPrefix string `default:"inspections" split_words:"true"`
}

func init() {
	readEnv()
	Logger = log.NewLogger(os.Stderr, Env.LogLevel)
	ErrLogger = log.NewLogger(os.Stderr, Env.LogLevel)

	if Env.GoEnv == EnvTest {
		return
	}
	SentryHook = log.NewSentryHook(Env.GoEnv, GitCommitHash)
	if SentryHook != nil {
		ErrLogger.AddHook(SentryHook)
	}
}

// readEnv loads environment data into `Env`
func readEnv() {
	err := envconfig.Process("", &Env)
	if err != nil {
		stdlog.Fatal(errors.New("error loading env vars: " + err.Error()))
	}
}

// GetUUID creates a new, unique version 4 (random) UUID and returns it
// as a uuid.UUID. Errors are ignored.
func GetUUID() uuid.UUID {
	id, err := uuid.NewV4()
	if err != nil {
		ErrLogger.Printf("error creating new uuid ... %v", err)
	}
	return id
}

// IsOtherThanNoRows returns false if the error is nil or is just reporting that there
// were no rows in the result set for a sql query.
func IsOtherThanNoRows(err error) bool {
	if err == nil {
		return false
	}

	if strings.Contains(err.Error(), sql.ErrNoRows.Error()) {
		return false
	}

	return true
}

// IsStringInSlice iterates over a slice of strings, looking for the given
// string. If found, true is returned. Otherwise, false is returned.
func IsStringInSlice(needle string, haystack []string) bool {
	for _, hs := range haystack {
		if needle == hs {
			return true
		}
	}

	return false
}

// FlushLogs sends any queued Sentry events. Commands call it before exiting.
func FlushLogs() {
	if SentryHook != nil {
		SentryHook.Flush()
	}
}

// GetFunctionName provides the filename, line number, and function name of the caller, skipping the top `skip`
// functions on the stack.
func GetFunctionName(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}

	return fmt.Sprintf("%s:%d %s", file, line, runtime.FuncForPC(pc).Name())
}
