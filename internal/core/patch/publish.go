// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package patch

import "time"

// Publish state fields shared by blog posts, decisions and content pages.
const (
	FieldIsPublished = "is_published"
	FieldPublishedAt = "published_at"
)

// StampOnCreate sets published_at on a new published document that lacks one.
func StampOnCreate(document map[string]any, now time.Time) {
	if document[FieldIsPublished] == true && isUnset(document[FieldPublishedAt]) {
		document[FieldPublishedAt] = now
	}
}

// StampOnUpdate applies the publish transition to a patch.
//
// Publishing stamps published_at only the first time: when neither the stored
// document nor the patch carries one. Unpublishing clears it.
func StampOnUpdate(existing, set map[string]any, now time.Time) {
	switch set[FieldIsPublished] {
	case true:
		if isUnset(existing[FieldPublishedAt]) && isUnset(set[FieldPublishedAt]) {
			set[FieldPublishedAt] = now
		}
	case false:
		set[FieldPublishedAt] = nil
	}
}

func isUnset(value any) bool {
	if value == nil {
		return true
	}
	text, ok := value.(string)
	return ok && text == ""
}
