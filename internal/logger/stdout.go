package logger

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"pokemcp/internal/models"

	"github.com/google/uuid"
)

// StdoutLogger implements the Service interface by writing JSON lines to
// standard output. Used when no database URL is configured.
type StdoutLogger struct {
	out *log.Logger
}

// NewStdoutLogger creates a new stdout logger
func NewStdoutLogger() Service {
	return &StdoutLogger{
		out: log.New(os.Stdout, "", 0),
	}
}

// LogInfo logs an informational message (no severity)
func (l *StdoutLogger) LogInfo(ctx context.Context, operation, message string, metadata map[string]interface{}) {
	l.logEntry(ctx, "", operation, "", message, nil, metadata)
}

// LogSuccess logs a successful operation (no severity)
func (l *StdoutLogger) LogSuccess(ctx context.Context, operation, targetName, message string, metadata map[string]interface{}) {
	l.logEntry(ctx, "", operation, targetName, message, nil, metadata)
}

// LogError logs an error with required severity
func (l *StdoutLogger) LogError(ctx context.Context, operation, targetName, message string, err error, severity models.LogSeverity, metadata map[string]interface{}) {
	l.logEntry(ctx, severity, operation, targetName, message, err, metadata)
}

func (l *StdoutLogger) logEntry(ctx context.Context, severity models.LogSeverity, operation, targetName, message string, err error, metadata map[string]interface{}) {
	logEvent := GetLogEvent(ctx)

	entry := &models.LogEntry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		Severity:    severity,
		Message:     message,
		Operation:   operation,
		TargetName:  targetName,
		ProcessID:   logEvent.ProcessID,
		ProcessType: logEvent.ProcessType,
		ClientIP:    logEvent.ClientIP,
		Metadata:    metadata,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	line, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		l.out.Printf(`{"operation":%q,"message":%q,"error":"log entry not serializable"}`, operation, message)
		return
	}

	l.out.Println(string(line))
}

// Close is a no-op for the stdout logger
func (l *StdoutLogger) Close() error {
	return nil
}
