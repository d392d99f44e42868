package handlers

import (
	"context"
	"time"

	"family_expenses/internal/config"
	"family_expenses/internal/models"
	"family_expenses/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockSessions struct {
	beginSession models.Session
	beginErr     error
	getSession   *models.Session
	getErr       error
	destroyErr   error

	beginCalls   int
	getCalls     []string
	destroyCalls []string
}

func (m *mockSessions) Begin(ctx context.Context) (models.Session, error) {
	m.beginCalls++
	return m.beginSession, m.beginErr
}

func (m *mockSessions) Get(ctx context.Context, token string) (*models.Session, error) {
	m.getCalls = append(m.getCalls, token)
	return m.getSession, m.getErr
}

func (m *mockSessions) Destroy(ctx context.Context, token string) error {
	m.destroyCalls = append(m.destroyCalls, token)
	return m.destroyErr
}

type mockAuthenticator struct {
	name         string
	authErr      error
	challenge    string
	challengeErr error

	lastCred    service.Credentials
	lastSession *models.Session
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, sess *models.Session, cred service.Credentials) (string, error) {
	m.lastSession = sess
	m.lastCred = cred
	return m.name, m.authErr
}

func (m *mockAuthenticator) IssueChallenge(ctx context.Context, sess *models.Session) (string, error) {
	m.lastSession = sess
	return m.challenge, m.challengeErr
}

type mockGate struct {
	identity string
	err      error

	tokens []string
}

func (m *mockGate) Authorize(ctx context.Context, token string) (string, error) {
	m.tokens = append(m.tokens, token)
	return m.identity, m.err
}

type mockRecords struct {
	createRow models.Record
	createErr error
	updateErr error
	deleteErr error
	queryRows []models.Record
	querySum  map[string]float64
	queryErr  error

	lastCreator string
	lastEditor  string
	lastInput   service.RecordInput
	lastDelete  string
	lastQuery   service.QueryParams
}

func (m *mockRecords) Create(ctx context.Context, creator string, in service.RecordInput) (models.Record, error) {
	m.lastCreator = creator
	m.lastInput = in
	return m.createRow, m.createErr
}

func (m *mockRecords) Update(ctx context.Context, editor string, in service.RecordInput) error {
	m.lastEditor = editor
	m.lastInput = in
	return m.updateErr
}

func (m *mockRecords) Delete(ctx context.Context, id string) error {
	m.lastDelete = id
	return m.deleteErr
}

func (m *mockRecords) Query(ctx context.Context, p service.QueryParams) ([]models.Record, map[string]float64, error) {
	m.lastQuery = p
	return m.queryRows, m.querySum, m.queryErr
}

type mockCategories struct {
	cats []models.Category
	err  error
}

func (m *mockCategories) List(ctx context.Context) ([]models.Category, error) {
	return m.cats, m.err
}

type mockProjector struct {
	rebuildErr error
	runCalls   int
}

func (m *mockProjector) Run(ctx context.Context, tick time.Duration) { m.runCalls++ }
func (m *mockProjector) Rebuild(ctx context.Context) error           { return m.rebuildErr }

// ---- Shared Test Helpers ----

func testConfig() *config.Config {
	return &config.Config{
		Port:         "8080",
		CookieName:   "fesession",
		SessionTTL:   time.Hour,
		AuthProtocol: config.ProtocolDirect,
		RebuildTick:  time.Minute,
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, testConfig(), nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
