package seed

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/johnwards/blogseed/internal/domain"
)

func (s *Seeder) loadPosts(ctx context.Context, refs *References) (int, error) {
	for i, title := range postTitles {
		post, err := s.buildPost(refs, i, title)
		if err != nil {
			return 0, err
		}
		s.sink.Persist(post)
	}

	if err := s.sink.Flush(ctx); err != nil {
		return 0, fmt.Errorf("flush posts: %w", err)
	}
	return len(postTitles), nil
}

func (s *Seeder) buildPost(refs *References, i int, title string) (*domain.Post, error) {
	author, err := refs.User(s.postAuthor(i))
	if err != nil {
		return nil, fmt.Errorf("post %d author: %w", i, err)
	}

	tags, err := s.randomTags(refs)
	if err != nil {
		return nil, fmt.Errorf("post %d tags: %w", i, err)
	}

	post := &domain.Post{
		Title:       title,
		Slug:        strings.ToLower(s.slugger.Slug(title)),
		Summary:     s.summaries.Next(),
		Content:     s.contents.Next(),
		PublishedAt: s.publishedAt(i),
		Author:      author,
	}
	post.AddTag(tags...)

	commenter, err := refs.User(CommentAuthor)
	if err != nil {
		return nil, fmt.Errorf("post %d comments: %w", i, err)
	}
	base := s.now()
	for k := 1; k <= CommentsPerPost; k++ {
		post.AddComment(&domain.Comment{
			Author:      commenter,
			Content:     s.comments.Next(),
			PublishedAt: base.Add(time.Duration(k) * time.Second),
		})
	}

	return post, nil
}

// postAuthor pins the first post to FirstPostAuthor and picks one of
// postAuthors at random for the rest.
func (s *Seeder) postAuthor(i int) string {
	if i == 0 {
		return FirstPostAuthor
	}
	return postAuthors[s.rand.Number(0, len(postAuthors)-1)]
}

// publishedAt returns a time on the day i days before now, between 08:07
// and 17:49.
func (s *Seeder) publishedAt(i int) time.Time {
	day := s.now().AddDate(0, 0, -i)
	return time.Date(day.Year(), day.Month(), day.Day(),
		s.rand.Number(8, 17), s.rand.Number(7, 49), s.rand.Number(0, 59), 0,
		day.Location())
}

// randomTags returns between two and four distinct tags.
func (s *Seeder) randomTags(refs *References) ([]*domain.Tag, error) {
	names := slices.Clone(defaultTags)
	s.rand.ShuffleStrings(names)
	names = names[:s.rand.Number(2, 4)]

	tags := make([]*domain.Tag, 0, len(names))
	for _, name := range names {
		tag, err := refs.Tag(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
