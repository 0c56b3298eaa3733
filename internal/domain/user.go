package domain

// HasBookmark reports whether id is in the user's bookmark set.
func (u *User) HasBookmark(id string) bool {
	for _, b := range u.BookmarkedExhibitionIDs {
		if b == id {
			return true
		}
	}
	return false
}

// AddBookmark adds id and reports whether it was newly added.
func (u *User) AddBookmark(id string) bool {
	if u.HasBookmark(id) {
		return false
	}
	u.BookmarkedExhibitionIDs = append(u.BookmarkedExhibitionIDs, id)
	return true
}

// RemoveBookmark removes id and reports whether it was present.
func (u *User) RemoveBookmark(id string) bool {
	for i, b := range u.BookmarkedExhibitionIDs {
		if b == id {
			u.BookmarkedExhibitionIDs = append(u.BookmarkedExhibitionIDs[:i], u.BookmarkedExhibitionIDs[i+1:]...)
			return true
		}
	}
	return false
}

// AddBookmarks unions ids into the bookmark set and returns the ids that were not
// already present, in input order and without duplicates.
func (u *User) AddBookmarks(ids []string) []string {
	var added []string
	for _, id := range ids {
		if u.AddBookmark(id) {
			added = append(added, id)
		}
	}
	return added
}

// Clone copies the user including its bookmark set.
func (u User) Clone() User {
	u.BookmarkedExhibitionIDs = append([]string(nil), u.BookmarkedExhibitionIDs...)
	return u
}
