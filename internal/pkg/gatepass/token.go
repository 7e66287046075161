package gatepass

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token errors
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrUnknownPurpose = errors.New("unknown gate pass purpose")
)

// Purpose distinguishes an exit-authorizing pass from an entry-authorizing one.
// The set is closed: a leave application carries exactly one pass per purpose.
type Purpose string

const (
	// PurposeExit authorizes leaving the hostel at the start of the leave.
	PurposeExit Purpose = "EXIT"
	// PurposeEntry authorizes returning to the hostel at the end of the leave.
	PurposeEntry Purpose = "ENTRY"
)

// Valid reports whether p is one of the two recognized purposes.
func (p Purpose) Valid() bool {
	return p == PurposeExit || p == PurposeEntry
}

// WindowDuration is how long a pass stays redeemable from its anchor date.
// The exit window is anchored to the first leave day, the entry window to the
// last one, so the entry window always opens after the exit window.
const WindowDuration = 24 * time.Hour

// Claims is the signed payload embedded in a gate pass token.
//
// ValidFrom/ValidUntil are the authoritative redemption window. The registered
// exp claim is set to ValidUntil as an outer ceiling only; the verifier checks
// the window itself so that a stale clock on either side yields the specific
// "not yet valid" / "expired" outcome instead of a generic parse failure.
type Claims struct {
	LeaveApplicationID int64            `json:"leaveApplicationId"`
	StudentID          int64            `json:"studentId"`
	Purpose            Purpose          `json:"purpose"`
	LeaveFrom          string           `json:"leaveFrom"`
	LeaveTo            string           `json:"leaveTo"`
	ValidFrom          *jwt.NumericDate `json:"validFrom"`
	ValidUntil         *jwt.NumericDate `json:"validUntil"`
	jwt.RegisteredClaims
}

// Codec signs and verifies gate pass tokens with an injected secret.
type Codec struct {
	secret []byte
	issuer string
}

// NewCodec creates a Codec. The secret is injected configuration so tests can
// swap keys; it is never read from process-wide state.
func NewCodec(secret, issuer string) *Codec {
	return &Codec{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Pass is one freshly minted gate pass, ready to persist.
type Pass struct {
	LeaveApplicationID int64
	Purpose            Purpose
	Code               string
	ValidFrom          time.Time
	ValidUntil         time.Time
}

// Issue mints a single signed pass for one direction, anchored to the given
// leave boundary date. anchor is the first leave day for EXIT and the last
// leave day for ENTRY.
func (c *Codec) Issue(leaveApplicationID, studentID int64, purpose Purpose, anchor, leaveFrom, leaveTo time.Time) (*Pass, error) {
	if !purpose.Valid() {
		return nil, ErrUnknownPurpose
	}

	validFrom := anchor
	validUntil := anchor.Add(WindowDuration)

	claims := &Claims{
		LeaveApplicationID: leaveApplicationID,
		StudentID:          studentID,
		Purpose:            purpose,
		LeaveFrom:          leaveFrom.Format(time.DateOnly),
		LeaveTo:            leaveTo.Format(time.DateOnly),
		ValidFrom:          jwt.NewNumericDate(validFrom),
		ValidUntil:         jwt.NewNumericDate(validUntil),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(validUntil),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    c.issuer,
			Subject:   fmt.Sprintf("%d", studentID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	code, err := token.SignedString(c.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign gate pass token: %w", err)
	}

	return &Pass{
		LeaveApplicationID: leaveApplicationID,
		Purpose:            purpose,
		Code:               code,
		ValidFrom:          validFrom,
		ValidUntil:         validUntil,
	}, nil
}

// IssuePair mints the exit and entry passes for an approved leave application.
// The exit window opens on the first leave day, the entry window on the last.
func (c *Codec) IssuePair(leaveApplicationID, studentID int64, fromDate, toDate time.Time) (exit, entry *Pass, err error) {
	exit, err = c.Issue(leaveApplicationID, studentID, PurposeExit, fromDate, fromDate, toDate)
	if err != nil {
		return nil, nil, err
	}
	entry, err = c.Issue(leaveApplicationID, studentID, PurposeEntry, toDate, fromDate, toDate)
	if err != nil {
		return nil, nil, err
	}
	return exit, entry, nil
}

// Decode parses a token and verifies its signature. Claims validation is
// deliberately disabled: the redemption window inside the payload is the
// authoritative time bound and is checked by the verifier, not by the parser.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ValidFrom == nil || claims.ValidUntil == nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
