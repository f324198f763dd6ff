//go:build integration

package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"news-cms/cache"
	"news-cms/config"
	"news-cms/handlers"
	"news-cms/helper"
	"news-cms/models"
	"news-cms/repositories"
	"news-cms/routes"
	"news-cms/services"
	"news-cms/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IntegrationTestSuite struct {
	suite.Suite
	ctx        context.Context
	container  testcontainers.Container
	db         *gorm.DB
	router     *gin.Engine
	uploadsDir string
	token      string
}

func (suite *IntegrationTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	container, err := testcontainers.GenericContainer(suite.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "cms",
				"POSTGRES_PASSWORD": "cms",
				"POSTGRES_DB":       "news_cms_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		suite.T().Skipf("Skipping integration suite: postgres container unavailable: %v", err)
	}
	suite.container = container

	host, err := container.Host(suite.ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(suite.ctx, "5432/tcp")
	suite.Require().NoError(err)

	db, err := config.InitDB(config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "cms",
		Password: "cms",
		Name:     "news_cms_test",
		SSLMode:  "disable",
	})
	suite.Require().NoError(err)
	suite.db = db

	suite.uploadsDir, err = os.MkdirTemp("", "news-cms-uploads")
	suite.Require().NoError(err)

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	images, err := storage.NewLocalStorage(suite.uploadsDir, "/uploads")
	suite.Require().NoError(err)

	adminRepo := repositories.NewAdminRepository(suite.db)
	postRepo := repositories.NewPostRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)

	authService := services.NewAuthService(adminRepo, services.NewTokenManager("test-secret", time.Hour), cache.NewMemoryTokenStore())
	httpHelper := helper.NewHTTPHelper()

	router, err := routes.SetupRouter(routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, httpHelper),
		Post:     handlers.NewPostHandler(services.NewPostService(postRepo, tagRepo, images), httpHelper),
		Tag:      handlers.NewTagHandler(services.NewTagService(tagRepo, postRepo), httpHelper),
		Author:   handlers.NewAuthorHandler(services.NewAuthorService(repositories.NewAuthorRepository(suite.db), images), httpHelper),
		Contact:  handlers.NewContactHandler(services.NewContactService(repositories.NewContactRepository(suite.db)), httpHelper),
		Term:     handlers.NewTermHandler(services.NewTermService(repositories.NewTermRepository(suite.db)), httpHelper),
		Category: handlers.NewCategoryHandler(services.NewCategoryService(postRepo), httpHelper),
	}, authService, httpHelper, routes.Options{
		UploadsDir:  images.Dir(),
		UploadsPath: "/uploads",
	})
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	if suite.uploadsDir != "" {
		_ = os.RemoveAll(suite.uploadsDir)
	}
	if suite.container != nil {
		if err := suite.container.Terminate(suite.ctx); err != nil {
			suite.T().Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test
	suite.db.Exec("TRUNCATE TABLE post_tags, posts, tags, admins, authors, contacts, terms RESTART IDENTITY CASCADE")

	suite.seedAndLoginAdmin()
}

func (suite *IntegrationTestSuite) seedAndLoginAdmin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.Create(&models.Admin{Username: "admin", Password: string(hashed)}).Error)

	w := suite.doJSON(http.MethodPost, "/admin/login", models.LoginRequest{Username: "admin", Password: "secret"}, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp models.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.token = resp.Token
}

func (suite *IntegrationTestSuite) doJSON(method, target string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		suite.Require().NoError(json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) createPost(title string, tags ...string) *httptest.ResponseRecorder {
	return suite.createPostIn(title, models.CategoryPolitics, false, tags...)
}

func (suite *IntegrationTestSuite) createPostIn(title string, category models.Category, highlighted bool, tags ...string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	_ = writer.WriteField("title", title)
	_ = writer.WriteField("content", "Matn")
	_ = writer.WriteField("category", string(category))
	if highlighted {
		_ = writer.WriteField("highlighted", "true")
	}
	for _, tag := range tags {
		_ = writer.WriteField("tags", tag)
	}
	part, err := writer.CreateFormFile("image", "cover.png")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("png"))
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/posts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) TestCreatePostAndCountViews() {
	w := suite.doJSON(http.MethodPost, "/tags", models.TagRequest{Name: "sport"}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.createPost("Yangi qonun", "sport")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		Post models.Post `json:"post"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("yangi-qonun", created.Post.Slug)
	suite.Len(created.Post.Tags, 1)

	for i := 1; i <= 3; i++ {
		w = suite.doJSON(http.MethodGet, "/posts/"+created.Post.Slug, nil, "")
		suite.Require().Equal(http.StatusOK, w.Code)

		var post models.Post
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &post))
		suite.Equal(i, post.Views)
	}
}

func (suite *IntegrationTestSuite) getSlugs(target string) ([]string, bool) {
	w := suite.doJSON(http.MethodGet, target, nil, "")
	suite.Require().Equal(http.StatusOK, w.Code, target)

	var resp struct {
		Posts   []models.Post `json:"posts"`
		HasMore bool          `json:"hasMore"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	slugs := make([]string, 0, len(resp.Posts))
	for _, post := range resp.Posts {
		slugs = append(slugs, post.Slug)
	}
	return slugs, resp.HasMore
}

func (suite *IntegrationTestSuite) TestLoadMoreFromZeroStartsWithInitialPage() {
	for i := 1; i <= 7; i++ {
		suite.Require().Equal(http.StatusCreated, suite.createPost(fmt.Sprintf("Xabar %d", i)).Code)
	}

	initial, hasMore := suite.getSlugs("/posts")
	suite.Equal([]string{"xabar-7", "xabar-6", "xabar-5", "xabar-4", "xabar-3"}, initial)
	suite.True(hasMore)

	more, hasMore := suite.getSlugs("/load-more?skip=0")
	suite.Require().Len(more, 7)
	suite.Equal(initial, more[:5])
	suite.False(hasMore)

	rest, _ := suite.getSlugs("/load-more?skip=5")
	suite.Equal([]string{"xabar-2", "xabar-1"}, rest)
}

func (suite *IntegrationTestSuite) TestHighlightedAndCategoryListsAreNewestFirst() {
	suite.Require().Equal(http.StatusCreated, suite.createPostIn("Birinchi", models.CategoryLaw, true).Code)
	suite.Require().Equal(http.StatusCreated, suite.createPostIn("Ikkinchi", models.CategoryEconomy, true).Code)
	suite.Require().Equal(http.StatusCreated, suite.createPostIn("Uchinchi", models.CategoryLaw, false).Code)
	suite.Require().Equal(http.StatusCreated, suite.createPostIn("To'rtinchi", models.CategoryLaw, true).Code)

	highlighted, _ := suite.getSlugs("/highlighted")
	suite.Equal([]string{"tortinchi", "ikkinchi", "birinchi"}, highlighted)

	law, _ := suite.getSlugs("/categories/" + string(models.CategoryLaw))
	suite.Equal([]string{"tortinchi", "uchinchi", "birinchi"}, law)
}

func (suite *IntegrationTestSuite) TestDuplicateTitlesGetDistinctSlugs() {
	suite.Require().Equal(http.StatusCreated, suite.createPost("Xabar").Code)
	w := suite.createPost("Xabar")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		Post models.Post `json:"post"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("xabar-1", created.Post.Slug)
}

func (suite *IntegrationTestSuite) TestUnknownTagPersistsNothing() {
	w := suite.createPost("Yo'q tag", "missing")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), models.MsgTagsNotFound)

	var count int64
	suite.db.Model(&models.Post{}).Count(&count)
	suite.Zero(count)
}

func (suite *IntegrationTestSuite) TestDuplicateTagConflicts() {
	suite.Equal(http.StatusCreated, suite.doJSON(http.MethodPost, "/tags", models.TagRequest{Name: "iqtisod"}, suite.token).Code)

	w := suite.doJSON(http.MethodPost, "/tags", models.TagRequest{Name: "iqtisod"}, suite.token)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), models.MsgTagNameTaken)
}

func (suite *IntegrationTestSuite) TestDeleteTagUnlinksPosts() {
	w := suite.doJSON(http.MethodPost, "/tags", models.TagRequest{Name: "sud"}, suite.token)
	var created struct {
		Tag models.Tag `json:"tag"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Require().Equal(http.StatusCreated, suite.createPost("Sud qarori", "sud").Code)

	w = suite.doJSON(http.MethodDelete, fmt.Sprintf("/tags/%d", created.Tag.ID), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var links int64
	suite.db.Table("post_tags").Count(&links)
	suite.Zero(links)
}

func (suite *IntegrationTestSuite) TestSearchIsCaseInsensitive() {
	suite.Require().Equal(http.StatusCreated, suite.createPost("Iqtisodiy Islohot").Code)

	w := suite.doJSON(http.MethodGet, "/search?query=islohot", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Posts []models.Post `json:"posts"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Posts, 1)

	w = suite.doJSON(http.MethodGet, "/search?query=100%25", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestLogoutRevokesToken() {
	w := suite.doJSON(http.MethodPost, "/admin/logout", nil, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.doJSON(http.MethodPost, "/tags", models.TagRequest{Name: "siyosat"}, suite.token)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestContactValidation() {
	w := suite.doJSON(http.MethodPost, "/contacts", models.ContactRequest{
		Name:    "Ali",
		Phone:   "+998901234567",
		Email:   "ali@example.com",
		Subject: models.Subject("Boshqa"),
		Message: "Salom",
	}, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doJSON(http.MethodPost, "/contacts", models.ContactRequest{
		Name:    "Ali",
		Phone:   "+998901234567",
		Email:   "ali@example.com",
		Subject: models.SubjectProposal,
		Message: "Salom",
	}, "")
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *IntegrationTestSuite) TestEncyclopediaLetters() {
	w := suite.doJSON(http.MethodPost, "/encyclopedia/terms", models.TermRequest{Term: "adolat", Description: "Haqqoniylik"}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.doJSON(http.MethodGet, "/encyclopedia/letter/A", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON(http.MethodGet, "/encyclopedia/letter/B", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
