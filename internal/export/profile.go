// Package export writes profiles, match tables and plans to files.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
)

// DefaultUserID names profile files written without a user.
const DefaultUserID = "default"

// ProfileFile is the on-disk form of a saved risk profile.
type ProfileFile struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	model.RiskProfile
}

// ProfileFilename returns risk_profile_<user>_<YYYYMMDD_HHMMSS>.json.
func ProfileFilename(userID string, at time.Time) string {
	return "risk_profile_" + safeName(userID) + "_" + at.Format("20060102_150405") + ".json"
}

// WriteProfile writes p as indented JSON into dir and returns the file path.
func WriteProfile(dir, userID string, p *model.RiskProfile, at time.Time) (string, error) {
	if p == nil {
		return "", eris.New("export: nil profile")
	}
	if userID == "" {
		userID = DefaultUserID
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "export: create dir %s", dir)
	}

	data, err := json.MarshalIndent(ProfileFile{UserID: userID, Timestamp: at, RiskProfile: *p}, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "export: marshal profile")
	}

	path := filepath.Join(dir, ProfileFilename(userID, at))
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", eris.Wrapf(err, "export: write %s", path)
	}
	return path, nil
}

// ReadProfile loads a file written by WriteProfile.
func ReadProfile(path string) (*ProfileFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "export: read %s", path)
	}
	var pf ProfileFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, eris.Wrapf(err, "export: parse %s", path)
	}
	return &pf, nil
}

// safeName keeps user IDs from escaping the export directory.
func safeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, s)
}
