package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/inkwell-next/internal/models"
)

func TestCreateArticleSingleObject(t *testing.T) {
	r, db := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", map[string]interface{}{
		"title":   "hello",
		"content": "world",
	})
	wantCount(t, w, http.StatusCreated, 1)

	var article models.Article
	if err := db.First(&article).Error; err != nil {
		t.Fatalf("load article failed: %v", err)
	}
	if article.State != models.ArticleStateDraft {
		t.Fatalf("state want DRAFT got %s", article.State)
	}
}

func TestCreateArticlesArrayAllOrNothing(t *testing.T) {
	r, db := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", []map[string]interface{}{
		{"title": "good", "state": models.ArticleStatePublished},
		{"title": "bad", "state": "LIMBO"},
	})
	wantError(t, w, http.StatusBadRequest, "state: must be one of DRAFT, PUBLISHED, ARCHIVED")

	var count int64
	if err := db.Model(&models.Article{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected batch must persist nothing, got %d rows", count)
	}

	w = doRequest(t, r, http.MethodPost, "/articles", []map[string]interface{}{
		{"title": "good", "state": models.ArticleStatePublished},
		{"title": "also good"},
	})
	wantCount(t, w, http.StatusCreated, 2)
}

func TestCreateArticleValidationMessages(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", map[string]interface{}{
		"title": strings.Repeat("x", 101),
	})
	wantError(t, w, http.StatusBadRequest, "title: must be at most 100 characters")

	w = doRequest(t, r, http.MethodPost, "/articles", map[string]interface{}{
		"title":   "ok",
		"content": strings.Repeat("x", 501),
	})
	wantError(t, w, http.StatusBadRequest, "content: must be at most 500 characters")
}

func TestGetArticleNotFound(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodGet, "/article/999", nil)
	wantError(t, w, http.StatusNotFound, "Article not found")
}

func TestGetArticleInvalidID(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodGet, "/article/abc", nil)
	wantError(t, w, http.StatusBadRequest, "Invalid id")
}

func TestUpdateArticlesPartialMatch(t *testing.T) {
	r, db := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", []map[string]interface{}{
		{"title": "one"},
		{"title": "two"},
	})
	wantCount(t, w, http.StatusCreated, 2)

	w = doRequest(t, r, http.MethodPut, "/articles/1,2,99", map[string]interface{}{
		"state": models.ArticleStateArchived,
	})
	wantCount(t, w, http.StatusOK, 2)

	var archived int64
	if err := db.Model(&models.Article{}).Where("state = ?", models.ArticleStateArchived).Count(&archived).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if archived != 2 {
		t.Fatalf("archived want 2 got %d", archived)
	}
}

func TestUpdateArticlesRejectsMalformedIDList(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPut, "/articles/1,x,3", map[string]interface{}{
		"state": models.ArticleStateDraft,
	})
	wantError(t, w, http.StatusBadRequest, "Invalid ids")
}

func TestDeleteArticleReturnsRecord(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", map[string]interface{}{"title": "gone"})
	wantCount(t, w, http.StatusCreated, 1)

	w = doRequest(t, r, http.MethodDelete, "/article/1", nil)
	wantStatus(t, w, http.StatusOK)
	var article models.Article
	decodeBody(t, w, &article)
	if article.Title != "gone" {
		t.Fatalf("title want gone got %s", article.Title)
	}

	w = doRequest(t, r, http.MethodDelete, "/article/1", nil)
	wantError(t, w, http.StatusNotFound, "Article not found")
}

func TestDeleteArticlesReportsHits(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", []map[string]interface{}{
		{"title": "one"},
		{"title": "two"},
		{"title": "three"},
	})
	wantCount(t, w, http.StatusCreated, 3)

	w = doRequest(t, r, http.MethodDelete, "/articles/1,3,42", nil)
	wantCount(t, w, http.StatusOK, 2)
}

func TestCountArticlesShape(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", []map[string]interface{}{
		{"title": "p", "state": models.ArticleStatePublished},
		{"title": "d"},
	})
	wantCount(t, w, http.StatusCreated, 2)

	w = doRequest(t, r, http.MethodGet, "/articles/count", nil)
	wantStatus(t, w, http.StatusOK)
	var body struct {
		ArticleCount          []models.Article `json:"articleCount"`
		PublishedArticleCount int64            `json:"publishedArticleCount"`
	}
	decodeBody(t, w, &body)
	if len(body.ArticleCount) != 2 {
		t.Fatalf("articleCount want 2 rows got %d", len(body.ArticleCount))
	}
	if body.PublishedArticleCount != 1 {
		t.Fatalf("publishedArticleCount want 1 got %d", body.PublishedArticleCount)
	}
}

func TestPaginatedArticles(t *testing.T) {
	r, _ := setupHandlerTest(t)

	batch := make([]map[string]interface{}, 0, 15)
	for i := 0; i < 15; i++ {
		batch = append(batch, map[string]interface{}{"title": "a"})
	}
	w := doRequest(t, r, http.MethodPost, "/articles", batch)
	wantCount(t, w, http.StatusCreated, 15)

	w = doRequest(t, r, http.MethodGet, "/articles/paginated", nil)
	wantStatus(t, w, http.StatusOK)
	var page []models.Article
	decodeBody(t, w, &page)
	if len(page) != 10 {
		t.Fatalf("default page want 10 got %d", len(page))
	}

	w = doRequest(t, r, http.MethodGet, "/articles/paginated?skip=10&take=10", nil)
	wantStatus(t, w, http.StatusOK)
	page = nil
	decodeBody(t, w, &page)
	if len(page) != 5 {
		t.Fatalf("second page want 5 got %d", len(page))
	}

	w = doRequest(t, r, http.MethodGet, "/articles/paginated?skip=-1", nil)
	wantError(t, w, http.StatusBadRequest, "Invalid skip")
}

func TestPublishedArticlesFilter(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := doRequest(t, r, http.MethodPost, "/articles", []map[string]interface{}{
		{"title": "p", "state": models.ArticleStatePublished},
		{"title": "d"},
		{"title": "a", "state": models.ArticleStateArchived},
	})
	wantCount(t, w, http.StatusCreated, 3)

	w = doRequest(t, r, http.MethodGet, "/articles/published", nil)
	wantStatus(t, w, http.StatusOK)
	var articles []models.Article
	decodeBody(t, w, &articles)
	if len(articles) != 1 || articles[0].State != models.ArticleStatePublished {
		t.Fatalf("want single published article, got %+v", articles)
	}
}
