package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	sessionKeyPrefix     = "captura:session:"
	userSessionKeyPrefix = "captura:user-sessions:"
)

// ErrSessionKey is returned by NewSessionStore for unusable key material
var ErrSessionKey = errors.New("session encryption key must be 64 hex characters")

// SessionData is what the console session keeps server-side. The tokens never
// reach the browser; it only holds the opaque session id.
type SessionData struct {
	UserID       string    `json:"userId"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	IssuedAt     time.Time `json:"issuedAt"`
}

// SessionStore seals session payloads with AES-GCM and indexes them per user
// so an account's sessions can be revoked together.
type SessionStore struct {
	aead cipher.AEAD
}

var (
	setSessionValue    = Set
	getSessionValue    = Get
	delSessionValue    = Del
	indexSession       = AddToSet
	unindexSession     = RemoveFromSet
	listUserSessions   = Members
	delSessionKeys     = DelAll
	marshalSessionJSON = json.Marshal
)

// NewSessionStore builds a store from a 32 byte key given as hex
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil || len(key) != 32 {
		return nil, ErrSessionKey
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	return &SessionStore{aead: aead}, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// CreateSession stores data under sessionID for expiration and adds the id to
// the owner's index
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	payload, err := marshalSessionJSON(data)
	if err != nil {
		return err
	}
	sealed, err := s.seal(sessionID, payload)
	if err != nil {
		return err
	}

	if err := setSessionValue(ctx, sessionKeyPrefix+sessionID, sealed, expiration); err != nil {
		return err
	}
	if data.UserID == "" {
		return nil
	}
	return indexSession(ctx, userSessionKeyPrefix+data.UserID, sessionID, expiration)
}

// GetSession returns Nil when the session expired or was revoked
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	sealed, err := getSessionValue(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}

	payload, err := s.open(sessionID, sealed)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &data, nil
}

// DeleteSession removes one session. The owner index is cleaned up when the
// session can still be read.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if data, err := s.GetSession(ctx, sessionID); err == nil && data.UserID != "" {
		_ = unindexSession(ctx, userSessionKeyPrefix+data.UserID, sessionID)
	}
	return delSessionValue(ctx, sessionKeyPrefix+sessionID)
}

// RevokeUserSessions drops every session of userID and returns how many ids
// were indexed
func (s *SessionStore) RevokeUserSessions(ctx context.Context, userID string) (int, error) {
	indexKey := userSessionKeyPrefix + userID
	ids, err := listUserSessions(ctx, indexKey)
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKeyPrefix+id)
	}
	keys = append(keys, indexKey)
	if err := delSessionKeys(ctx, keys...); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// seal binds the ciphertext to sessionID so a payload moved under another key
// fails to open
func (s *SessionStore) seal(sessionID string, plaintext []byte) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := s.aead.Seal(nonce, nonce, plaintext, []byte(sessionID))
	return base64.RawStdEncoding.EncodeToString(sealed), nil
}

func (s *SessionStore) open(sessionID, encoded string) ([]byte, error) {
	sealed, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	n := s.aead.NonceSize()
	if len(sealed) < n {
		return nil, errors.New("session payload too short")
	}
	return s.aead.Open(nil, sealed[:n], sealed[n:], []byte(sessionID))
}
