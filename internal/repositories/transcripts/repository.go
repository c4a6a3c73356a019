// Package transcripts stores the narration scrollback of running battles.
// Transcripts are session state: they expire after a TTL so finished or
// abandoned battles clean themselves up.
package transcripts

import (
	"context"
	"time"
)

// Line is one emitted narration entry.
type Line struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// Repository defines the storage interface for battle transcripts
type Repository interface {
	// Append adds a narration line to a battle's transcript and refreshes
	// its TTL
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// Get retrieves the full transcript of a battle
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a battle's transcript
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// AppendInput defines the request for appending a line
type AppendInput struct {
	BattleID string
	Text     string
	// TTL refreshes the transcript expiry; zero means the default.
	TTL time.Duration
}

// AppendOutput defines the response for appending a line
type AppendOutput struct {
	Line *Line
}

// GetInput defines the request for retrieving a transcript
type GetInput struct {
	BattleID string
}

// GetOutput defines the response for retrieving a transcript
type GetOutput struct {
	Lines []Line
}

// DeleteInput defines the request for deleting a transcript
type DeleteInput struct {
	BattleID string
}

// DeleteOutput defines the response for deleting a transcript
type DeleteOutput struct {
	LinesDeleted int
}
