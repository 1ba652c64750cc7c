package gallery

// Visible reports whether viewerID may see the item. An empty viewerID is
// an anonymous viewer and sees only public items. An unset visibility
// counts as public.
func Visible(item Item, viewerID string) bool {
	switch item.Visibility {
	case VisibilityPrivate:
		return viewerID != "" && viewerID == item.UserID
	case VisibilityRestricted:
		if viewerID == "" {
			return false
		}
		if viewerID == item.UserID {
			return true
		}
		for _, id := range item.SharedWith {
			if id == viewerID {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// SharedWithMe reports whether the item belongs to the viewer's
// "shared with me" listing: restricted, shared to the viewer, and not
// the viewer's own.
func SharedWithMe(item Item, viewerID string) bool {
	if viewerID == "" || item.Visibility != VisibilityRestricted || item.UserID == viewerID {
		return false
	}
	for _, id := range item.SharedWith {
		if id == viewerID {
			return true
		}
	}
	return false
}

// NormalizeSharedWith enforces the shared_with invariant: the list is
// kept only when visibility is restricted and the list is non-empty.
func NormalizeSharedWith(visibility string, sharedWith []string) []string {
	if visibility != VisibilityRestricted || len(sharedWith) == 0 {
		return nil
	}
	return sharedWith
}
