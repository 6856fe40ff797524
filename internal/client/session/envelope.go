package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/povreview/povcli/internal/client/models"
)

// envelopeVersion is bumped when the persisted schema changes. Envelopes
// carrying any other version fail closed to Anonymous; there is no partial
// migration.
const envelopeVersion = 1

// ErrBadEnvelope marks a persisted session that could not be restored.
var ErrBadEnvelope = errors.New("unreadable session envelope")

// envelope is the durable form of the session state.
type envelope struct {
	Version         int          `json:"version"`
	User            *models.User `json:"user"`
	Token           string       `json:"token"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

func marshalEnvelope(s Snapshot) ([]byte, error) {
	return json.Marshal(envelope{
		Version:         envelopeVersion,
		User:            s.User,
		Token:           s.Token,
		IsAuthenticated: s.IsAuthenticated,
	})
}

func unmarshalEnvelope(data []byte) (Snapshot, error) {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	if e.Version != envelopeVersion {
		return Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrBadEnvelope, e.Version)
	}
	return Snapshot{User: e.User, Token: e.Token, IsAuthenticated: e.IsAuthenticated}, nil
}
