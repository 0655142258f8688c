package handlers_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio/internal/handlers"
	"portfolio/internal/logger"
	"portfolio/internal/mailer"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubMailer swallows outgoing mail during tests.
type stubMailer struct {
	sent []mailer.Message
}

func (m *stubMailer) Send(msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type testApp struct {
	app     *fiber.App
	mail    *stubMailer
	resumes repositories.ResumeRepository
}

// setupApp wires the whole application against in-memory SQLite, the way
// main does, minus the listener.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.Certificate{},
		&models.Resume{},
	))

	files, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	log := logger.New("error")
	mail := &stubMailer{}

	adminRepo := repositories.NewGORMAdminRepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)
	skillRepo := repositories.NewGORMSkillRepository(db)
	projectRepo := repositories.NewGORMProjectRepository(db)
	experienceRepo := repositories.NewGORMExperienceRepository(db)
	educationRepo := repositories.NewGORMEducationRepository(db)
	certificateRepo := repositories.NewGORMCertificateRepository(db)
	resumeRepo := repositories.NewGORMResumeRepository(db)

	authService := services.NewAuthService(adminRepo, "test-jwt-secret")
	require.NoError(t, authService.EnsureAdmin("admin", "secret123"))

	profileService := services.NewProfileService(profileRepo, files)
	skillService := services.NewSkillService(skillRepo)
	projectService := services.NewProjectService(projectRepo, files)
	experienceService := services.NewExperienceService(experienceRepo)
	educationService := services.NewEducationService(educationRepo)
	certificateService := services.NewCertificateService(certificateRepo, files)
	resumeService := services.NewResumeService(resumeRepo, files)
	publicService := services.NewPublicService(
		profileRepo, skillRepo, projectRepo, experienceRepo,
		educationRepo, certificateRepo, resumeRepo,
	)
	contactService := services.NewContactService(mail, "owner@example.com", log)

	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})

	handlers.NewPublicHandler(publicService, resumeService, contactService, log).RegisterRoutes(app)
	authHandler := handlers.NewAuthHandler(authService, log)
	authHandler.RegisterPublicRoutes(app)

	admin := app.Group("/admin", middleware.AuthRequired(authService))
	authHandler.RegisterRoutes(admin)
	handlers.NewDashboardHandler(
		profileService, skillService, projectService, experienceService,
		educationService, certificateService, resumeService, log,
	).RegisterRoutes(admin)
	handlers.NewProfileHandler(profileService, publicService, log).RegisterRoutes(admin)
	handlers.NewSkillHandler(skillService, publicService, log).RegisterRoutes(admin)
	handlers.NewProjectHandler(projectService, publicService, log).RegisterRoutes(admin)
	handlers.NewExperienceHandler(experienceService, publicService, log).RegisterRoutes(admin)
	handlers.NewEducationHandler(educationService, publicService, log).RegisterRoutes(admin)
	handlers.NewCertificateHandler(certificateService, publicService, log).RegisterRoutes(admin)
	handlers.NewResumeHandler(resumeService, publicService, log).RegisterRoutes(admin)

	return &testApp{app: app, mail: mail, resumes: resumeRepo}
}

// login performs the login form POST and returns the session cookie.
func login(t *testing.T, a *testApp) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {"admin"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func postForm(t *testing.T, a *testApp, session *http.Cookie, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, a *testApp, session *http.Cookie, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHomePage_FreshInstall(t *testing.T) {
	a := setupApp(t)

	resp := get(t, a, nil, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "Your Name")
	assert.Contains(t, page, "No skills added yet.")
}

func TestAdmin_RequiresSession(t *testing.T) {
	a := setupApp(t)

	resp := get(t, a, nil, "/admin/dashboard")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestLogin(t *testing.T) {
	a := setupApp(t)

	// Wrong password re-renders the form with the generic message.
	resp := postForm(t, a, nil, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Invalid username or password")

	// Correct credentials redirect to the dashboard with a session cookie.
	session := login(t, a)

	resp = get(t, a, session, "/admin/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Dashboard")
}

func TestLogout_ClearsSession(t *testing.T) {
	a := setupApp(t)
	session := login(t, a)

	resp := get(t, a, session, "/admin/logout")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			assert.Empty(t, cookie.Value)
		}
	}
}

func TestSkill_CRUDRoundTrip(t *testing.T) {
	a := setupApp(t)
	session := login(t, a)

	// The public page starts empty and is cached.
	resp := get(t, a, nil, "/")
	assert.Contains(t, body(t, resp), "No skills added yet.")

	resp = postForm(t, a, session, "/admin/skills/add", url.Values{
		"name":       {"Go"},
		"percentage": {"85"},
		"category":   {"Backend"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/skills", resp.Header.Get("Location"))

	resp = get(t, a, session, "/admin/skills")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "Go")
	assert.Contains(t, page, "85%")

	// Creating the skill flushed the public cache.
	resp = get(t, a, nil, "/")
	assert.Contains(t, body(t, resp), "Go")

	// Pull the ID out of the edit link on the list page.
	id := extractID(t, page, "/admin/skills/edit/")

	resp = postForm(t, a, session, "/admin/skills/edit/"+id, url.Values{
		"name":       {"Golang"},
		"percentage": {"90"},
		"category":   {"Backend"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, a, session, "/admin/skills")
	assert.Contains(t, body(t, resp), "Golang")

	resp = get(t, a, session, "/admin/skills/delete/"+id)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, a, session, "/admin/skills")
	assert.Contains(t, body(t, resp), "No skills yet.")
}

// extractID pulls the entity ID from the first link with the given prefix.
func extractID(t *testing.T, page, prefix string) string {
	t.Helper()

	idx := strings.Index(page, prefix)
	require.GreaterOrEqual(t, idx, 0, "no link with prefix %s", prefix)
	rest := page[idx+len(prefix):]
	end := strings.IndexByte(rest, '"')
	require.Greater(t, end, 0)
	return rest[:end]
}

func TestSkill_InvalidFormReRenders(t *testing.T) {
	a := setupApp(t)
	session := login(t, a)

	resp := postForm(t, a, session, "/admin/skills/add", url.Values{
		"name":       {""},
		"percentage": {"85"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "flash error")
}

func TestExperience_EditNotFound(t *testing.T) {
	a := setupApp(t)
	session := login(t, a)

	resp := get(t, a, session, "/admin/experience/edit/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func uploadResume(t *testing.T, a *testApp, session *http.Cookie, filename string, content []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume_file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("description", "test upload"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/resume/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(session)

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestResume_UploadAndServe(t *testing.T) {
	a := setupApp(t)
	session := login(t, a)

	resp := uploadResume(t, a, session, "My Resume.pdf", []byte("%PDF-1.4 test"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/resume", resp.Header.Get("Location"))

	uploaded, err := a.resumes.Latest()
	require.NoError(t, err)
	assert.Equal(t, "My Resume.pdf", uploaded.OriginalName)

	// A PDF is viewable inline.
	resp = get(t, a, nil, "/resume/"+uploaded.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inline")

	// The download route always forces an attachment.
	resp = get(t, a, nil, "/download/resume/"+uploaded.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	resp = get(t, a, nil, "/resume/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResume_UploadRejectsBadType(t *testing.T) {
	a := setupApp(t)
	session := login(t, a)

	resp := uploadResume(t, a, session, "resume.exe", []byte("MZ"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Invalid file type. Please upload PDF, DOC, or DOCX files.")

	n, err := a.resumes.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestContact(t *testing.T) {
	a := setupApp(t)

	resp := postForm(t, a, nil, "/contact", url.Values{
		"name":    {"Jordan"},
		"email":   {"jordan@example.com"},
		"subject": {"Hello"},
		"message": {"Nice site!"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/#contact", resp.Header.Get("Location"))
	require.Len(t, a.mail.sent, 2)
	assert.Equal(t, "owner@example.com", a.mail.sent[0].To)
	assert.Equal(t, "jordan@example.com", a.mail.sent[1].To)
}

func TestProfile_Update(t *testing.T) {
	a := setupApp(t)
	session := login(t, a)

	resp := postForm(t, a, session, "/admin/profile", url.Values{
		"name":  {"Robin Doe"},
		"title": {"Software Engineer"},
		"email": {"robin@example.com"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, a, nil, "/")
	page := body(t, resp)
	assert.Contains(t, page, "Robin Doe")
	assert.Contains(t, page, "Software Engineer")
}
