package domain

// Like is a bookmarked recipe. Its id is the recipe id.
type Like struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Author   string `json:"author" yaml:"author"`
	ImageURL string `json:"image_url" yaml:"image_url"`
}

// RecordID implements Record
func (l Like) RecordID() string { return l.ID }

// WithID implements Record
func (l Like) WithID(id string) Like {
	l.ID = id
	return l
}

// Likes holds liked recipes in the order they were liked
type Likes struct {
	items *Collection[Like]
}

// NewLikes creates an empty set of likes
func NewLikes() *Likes {
	return &Likes{items: NewCollection[Like]()}
}

// AddLike records a like for a recipe
func (l *Likes) AddLike(id, title, author, imageURL string) (Like, error) {
	like := Like{ID: id, Title: title, Author: author, ImageURL: imageURL}
	if err := l.items.Insert(like); err != nil {
		return Like{}, err
	}
	return like, nil
}

// DeleteLike removes the like for a recipe
func (l *Likes) DeleteLike(id string) error {
	return l.items.Remove(id)
}

// IsLiked reports whether the recipe is liked
func (l *Likes) IsLiked(id string) bool {
	return l.items.Contains(id)
}

// Toggle likes the recipe if it is not liked yet, otherwise unlikes it.
// It returns the like and whether the recipe is now liked.
func (l *Likes) Toggle(r *Recipe) (Like, bool, error) {
	if existing, ok := l.items.Find(r.ID); ok {
		if err := l.items.Remove(r.ID); err != nil {
			return Like{}, false, err
		}
		return existing, false, nil
	}
	like, err := l.AddLike(r.ID, r.Title, r.Author, r.ImageURL)
	if err != nil {
		return Like{}, false, err
	}
	return like, true, nil
}

// Count returns the number of likes
func (l *Likes) Count() int {
	return l.items.Len()
}

// All returns every like in order
func (l *Likes) All() []Like {
	return l.items.Export()
}

// Clear removes every like
func (l *Likes) Clear() {
	l.items.Clear()
}

// Replace swaps the contents for likes
func (l *Likes) Replace(likes []Like) error {
	return l.items.Import(likes)
}
