package wynncraft

import "context"

// NewsItem is one entry of the latest news feed.
type NewsItem struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	ForumThread string `json:"forumThread"`
	Author      string `json:"author"`
	Content     string `json:"content"`
	Comments    string `json:"comments"`
}

// GetLatestNews returns the latest news posts in the order the API lists them.
func (c *Client) GetLatestNews(ctx context.Context) ([]NewsItem, error) {
	root, err := c.fetchArray(ctx, "/latest-news", nil)
	if err != nil {
		return nil, err
	}
	return mapNews(root)
}

func mapNews(root array) ([]NewsItem, error) {
	items := make([]NewsItem, 0, len(root.items))
	err := root.objects(func(obj object) error {
		var item NewsItem
		if err := obj.extract(
			defaulted("title", "", &item.Title),
			defaulted("date", "", &item.Date),
			defaulted("forumThread", "", &item.ForumThread),
			defaulted("author", "", &item.Author),
			defaulted("content", "", &item.Content),
			defaulted("comments", "", &item.Comments),
		); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
