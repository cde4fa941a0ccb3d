package repository

import "time"

// Item is a pickable entry.
type Item struct {
	ID        string
	Label     string
	Section   string
	Meta      string
	Search    string
	CreatedAt time.Time
}

// Selection records one pick of an item.
type Selection struct {
	ID         string
	ItemID     string
	Query      string
	SelectedAt time.Time
}

// RecentItem is an item with its selection statistics.
type RecentItem struct {
	Item
	Picks        int
	LastSelected time.Time
}
