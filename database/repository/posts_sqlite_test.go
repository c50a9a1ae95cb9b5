package repository_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
)

func TestPostsCreateDerivesSlugAndReadingTime(t *testing.T) {
	conn := newSQLiteConnection(t)
	repo := repository.Posts{DB: conn}

	content := strings.Repeat("word ", 401)

	post, err := repo.Create(database.PostAttrs{
		Title:      "Hello, World! 2024",
		Content:    content,
		AuthorName: "Casey Ray",
		Status:     database.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if post.Slug != "hello-world-2024" {
		t.Fatalf("expected derived slug, got %q", post.Slug)
	}

	if post.ReadingTime != 3 {
		t.Fatalf("expected 401 words to round up to 3 minutes, got %d", post.ReadingTime)
	}

	if post.PublishedAt != nil {
		t.Fatalf("expected drafts to carry no published_at")
	}
}

func TestPostsCreateRejectsDuplicateSlug(t *testing.T) {
	conn := newSQLiteConnection(t)
	repo := repository.Posts{DB: conn}

	attrs := database.PostAttrs{
		Title:      "Same Title",
		Content:    "Body copy for the first version of the article.",
		AuthorName: "Casey Ray",
		Status:     database.PostStatusDraft,
	}

	if _, err := repo.Create(attrs); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// "Same Title" and "same--title!!" collapse to the same slug.
	attrs.Title = "Same. Title!"

	_, err := repo.Create(attrs)
	if !errors.Is(err, repository.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestPostsPublishedAtStampedOnceAcrossTransitions(t *testing.T) {
	conn := newSQLiteConnection(t)
	repo := repository.Posts{DB: conn}

	post, err := repo.Create(database.PostAttrs{
		Title:      "Lifecycle",
		Content:    "A post that will move through every status.",
		AuthorName: "Casey Ray",
		Status:     database.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	attrs := database.PostAttrs{
		Title:      "Lifecycle",
		Content:    "A post that will move through every status.",
		AuthorName: "Casey Ray",
		Status:     database.PostStatusPublished,
	}

	published, err := repo.Update(post.UUID, attrs)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if published.PublishedAt == nil {
		t.Fatalf("expected published_at on first publish")
	}

	stamp := *published.PublishedAt

	// Archiving and republishing must not move the original stamp.
	attrs.Status = database.PostStatusArchived
	if _, err = repo.Update(post.UUID, attrs); err != nil {
		t.Fatalf("archive: %v", err)
	}

	attrs.Status = database.PostStatusPublished
	republished, err := repo.Update(post.UUID, attrs)
	if err != nil {
		t.Fatalf("republish: %v", err)
	}

	if republished.PublishedAt == nil || !republished.PublishedAt.Equal(stamp) {
		t.Fatalf("expected original published_at to survive, got %v", republished.PublishedAt)
	}
}

func TestPostsUpdateReplacesTagLinks(t *testing.T) {
	conn := newSQLiteConnection(t)
	repo := repository.Posts{DB: conn}

	golang := seedTag(t, conn, "Go", "go")
	infra := seedTag(t, conn, "Infra", "infra")

	post, err := repo.Create(database.PostAttrs{
		Title:      "Tagged Post",
		Content:    "Content that carries a moving set of tags.",
		AuthorName: "Casey Ray",
		Status:     database.PostStatusDraft,
		TagIDs:     []uint64{golang.ID},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err = repo.Update(post.UUID, database.PostAttrs{
		Title:      "Tagged Post",
		Content:    "Content that carries a moving set of tags.",
		AuthorName: "Casey Ray",
		Status:     database.PostStatusDraft,
		TagIDs:     []uint64{infra.ID},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	var links []database.PostTag
	if err := conn.Sql().Where("post_id = ?", post.ID).Find(&links).Error; err != nil {
		t.Fatalf("load links: %v", err)
	}

	if len(links) != 1 || links[0].TagID != infra.ID {
		t.Fatalf("expected the link set to be replaced, got %+v", links)
	}
}

func TestPostsDeleteRemovesTagLinks(t *testing.T) {
	conn := newSQLiteConnection(t)
	repo := repository.Posts{DB: conn}

	tag := seedTag(t, conn, "Ops", "ops")

	post, err := repo.Create(database.PostAttrs{
		Title:      "Doomed Post",
		Content:    "This post is created only to be deleted.",
		AuthorName: "Casey Ray",
		Status:     database.PostStatusDraft,
		TagIDs:     []uint64{tag.ID},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(post.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var links int64
	if err := conn.Sql().Model(&database.PostTag{}).Where("post_id = ?", post.ID).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}

	if links != 0 {
		t.Fatalf("expected tag links to be removed, got %d", links)
	}

	if repo.FindByUUID(post.UUID) != nil {
		t.Fatalf("expected deleted post to be gone")
	}
}

func TestPostsGetPublishedFiltersAndLoadsAssociations(t *testing.T) {
	conn := newSQLiteConnection(t)
	repo := repository.Posts{DB: conn}

	category := seedCategory(t, conn, "Engineering", "engineering")
	tag := seedTag(t, conn, "Design", "design")

	if _, err := repo.Create(database.PostAttrs{
		Title:      "Hidden Draft",
		Content:    "Still being written, must not leak.",
		AuthorName: "Casey Ray",
		Status:     database.PostStatusDraft,
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := repo.Create(database.PostAttrs{
		Title:      "Live Article",
		Content:    "Published content visible to everyone.",
		AuthorName: "Casey Ray",
		CategoryID: &category.ID,
		Status:     database.PostStatusPublished,
		TagIDs:     []uint64{tag.ID},
	}); err != nil {
		t.Fatalf("create published: %v", err)
	}

	posts, err := repo.GetPublished()
	if err != nil {
		t.Fatalf("get published: %v", err)
	}

	if len(posts) != 1 {
		t.Fatalf("expected only the published post, got %d", len(posts))
	}

	if posts[0].Category == nil || posts[0].Category.ID != category.ID {
		t.Fatalf("expected category association to load")
	}

	if len(posts[0].Tags) != 1 || posts[0].Tags[0].ID != tag.ID {
		t.Fatalf("expected tag association to load")
	}
}
