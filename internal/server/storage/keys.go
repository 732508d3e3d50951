package storage

import (
	"strings"
	"time"
)

// FolderJournal is the logical folder holding journal photo uploads.
const FolderJournal = "journal"

// GenerateKey builds the storage key for an upload:
//
//	{folder}/{UTC date}/{photoID}_{sanitized original name}
//
// The embedded photo id makes keys collision-free across uploads; the
// date partition keeps the bucket browsable without a separate index.
// The same (photoID, name) on the same UTC date always yields the same
// key.
func GenerateKey(folder, photoID, name string, now time.Time) string {
	return folder + "/" + now.UTC().Format("2006-01-02") + "/" + photoID + "_" + SanitizeName(name)
}

// SanitizeName replaces every rune outside [A-Za-z0-9.-] with an
// underscore and collapses runs of underscores, so the key stays safe
// for URLs and object-store tooling.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	return b.String()
}

// SplitKey extracts the photo id and file name back out of a key's base
// segment ("{photoID}_{name}"). ok is false for keys that do not follow
// the scheme.
func SplitKey(key string) (id, name string, ok bool) {
	base := key
	if i := strings.LastIndex(key, "/"); i >= 0 {
		base = key[i+1:]
	}
	id, name, ok = strings.Cut(base, "_")
	if id == "" || name == "" {
		return "", "", false
	}
	return id, name, ok
}
