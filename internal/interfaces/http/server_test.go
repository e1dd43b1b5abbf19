package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/maturin/inventario-api/internal/application/auth"
	"github.com/maturin/inventario-api/internal/application/inventory"
	"github.com/maturin/inventario-api/internal/application/usecase"
	"github.com/maturin/inventario-api/internal/application/validation"
	"github.com/maturin/inventario-api/internal/infrastructure/export"
	"github.com/maturin/inventario-api/internal/infrastructure/memory"
	"github.com/maturin/inventario-api/internal/infrastructure/metrics"
	"github.com/maturin/inventario-api/internal/infrastructure/pdf"
	"github.com/maturin/inventario-api/internal/infrastructure/security"
	apphttp "github.com/maturin/inventario-api/internal/interfaces/http"
	pkgjwt "github.com/maturin/inventario-api/pkg/jwt"
)

type testServer struct {
	app    *fiber.App
	tokens *pkgjwt.Manager
}

// newTestServer arma la app completa sobre repositorios en memoria.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	v := validation.New()
	tokens := newTokenManager(t, testJWTSecret)
	users := memory.NewUserRepository()
	equipmentUC := usecase.NewEquipmentUseCase(memory.NewEquipmentRepository(), v)

	app := apphttp.NewServer(apphttp.ServerConfig{
		AppName:      "inventario-test",
		AllowOrigins: "*",
		Logger:       zerolog.Nop(),
		Metrics:      metrics.New("test"),
	}, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(users, security.NewBcryptHasher(bcrypt.MinCost), tokens, v),
		UserUC:      usecase.NewUserUseCase(users),
		EquipmentUC: equipmentUC,
		ReportUC:    inventory.NewReportUseCase(equipmentUC, export.NewExcelExporter(), pdf.NewMarotoReportGenerator("Maturin")),
		Tokens:      tokens,
	})
	return &testServer{app: app, tokens: tokens}
}

type response struct {
	status int
	header http.Header
	raw    []byte
	body   map[string]interface{}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := response{status: resp.StatusCode, header: resp.Header, raw: raw}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out.body))
	}
	return out
}

// registerAndLogin registra la cuenta y devuelve el token del login.
func (s *testServer) registerAndLogin(t *testing.T, nombre, email, password, rol string) string {
	t.Helper()
	r := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"nombre": nombre, "email": email, "password": password, "rol": rol,
	})
	require.Equal(t, http.StatusCreated, r.status, string(r.raw))

	r = s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, r.status, string(r.raw))
	tok, _ := r.body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func data(t *testing.T, r response) map[string]interface{} {
	t.Helper()
	d, ok := r.body["data"].(map[string]interface{})
	require.True(t, ok, "respuesta sin data: %s", r.raw)
	return d
}

func TestFlujo_UsuarioLeePeroNoEscribe(t *testing.T) {
	s := newTestServer(t)

	r := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"nombre": "Ana", "email": "ana@x.com", "password": "secret1", "rol": "usuario",
	})
	require.Equal(t, http.StatusCreated, r.status)
	assert.NotContains(t, string(r.raw), "password")

	r = s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "ana@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, r.status)
	tok := r.body["token"].(string)
	user := r.body["user"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"nombre": "Ana", "email": "ana@x.com", "rol": "usuario"}, user)

	claims, err := s.tokens.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "usuario", claims.Rol)

	r = s.do(t, http.MethodGet, "/inventario", tok, nil)
	assert.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, []interface{}{}, r.body["data"], "lista vacía, nunca null")

	r = s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{"name": "Router", "category": "Networking"})
	assert.Equal(t, http.StatusForbidden, r.status)
	assert.Equal(t, "FORBIDDEN", r.body["code"])
}

func TestFlujo_AdminCreaBorraYYaNoExiste(t *testing.T) {
	s := newTestServer(t)
	tok := s.registerAndLogin(t, "Admin", "admin@x.com", "admin1234", "admin")

	r := s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{"name": "Router", "category": "Networking", "stock": 3})
	require.Equal(t, http.StatusCreated, r.status, string(r.raw))
	created := data(t, r)
	assert.Equal(t, "Disponible", created["status"])
	assert.Equal(t, "Deposito Central", created["location"])
	assert.EqualValues(t, 3, created["stock"])
	id := created["_id"].(string)
	require.NotEmpty(t, id)

	r = s.do(t, http.MethodDelete, "/inventario/"+id, tok, nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, id, data(t, r)["_id"])

	r = s.do(t, http.MethodGet, "/inventario/"+id, tok, nil)
	assert.Equal(t, http.StatusNotFound, r.status)
	assert.Equal(t, "NOT_FOUND", r.body["code"])
	assert.Equal(t, "Equipo no encontrado", r.body["message"])
}

func TestLogin_FallosIndistinguibles(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t, "Ana", "ana@x.com", "secret1", "")

	wrongPass := s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "ana@x.com", "password": "otra-clave"})
	noUser := s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "nadie@x.com", "password": "otra-clave"})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.status)
	assert.Equal(t, wrongPass.status, noUser.status)
	assert.Equal(t, string(wrongPass.raw), string(noUser.raw))
	assert.Equal(t, "Credenciales inválidas.", wrongPass.body["message"])
}

func TestRegister_Errores(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t, "Ana", "ana@x.com", "secret1", "")

	r := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{"nombre": "Otra", "email": "ana@x.com", "password": "secret2"})
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "EMAIL_EXISTS", r.body["code"])

	r = s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{"nombre": "Beto", "email": "no-es-email", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "VALIDATION", r.body["code"])
	fields := r.body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	// 60 eñes son 60 caracteres pero 120 bytes: no caben en bcrypt.
	r = s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{"nombre": "Ñandú", "email": "n@x.com", "password": strings.Repeat("ñ", 60)})
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "VALIDATION", r.body["code"])
	assert.Equal(t, "La contraseña no puede superar 72 bytes", r.body["fields"].(map[string]interface{})["password"])

	s.registerAndLogin(t, "Ñandú", "n@x.com", strings.Repeat("ñ", 36), "")

	r = s.do(t, http.MethodPost, "/api/users/register", "", `{"nombre":`)
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "INVALID_BODY", r.body["code"])
}

func TestInventario_SinTokenSiempre401(t *testing.T) {
	s := newTestServer(t)
	const id = "/inventario/00000000-0000-0000-0000-0000000000aa"
	routes := []struct{ method, path string }{
		{http.MethodGet, "/inventario"},
		{http.MethodGet, id},
		{http.MethodPost, "/inventario"},
		{http.MethodPut, id},
		{http.MethodDelete, id},
		{http.MethodGet, "/inventario/resumen"},
		{http.MethodGet, "/inventario/export/xlsx"},
		{http.MethodGet, "/inventario/export/pdf"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			r := s.do(t, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, r.status)
			assert.Equal(t, "MISSING_TOKEN", r.body["code"])

			r = s.do(t, rt.method, rt.path, "garbled.token.value", nil)
			assert.Equal(t, http.StatusUnauthorized, r.status)
			assert.Equal(t, "INVALID_TOKEN", r.body["code"])
		})
	}
}

func TestInventario_UsuarioNoAdmin(t *testing.T) {
	s := newTestServer(t)
	admin := s.registerAndLogin(t, "Admin", "admin@x.com", "admin1234", "admin")
	user := s.registerAndLogin(t, "Ana", "ana@x.com", "secret1", "usuario")

	r := s.do(t, http.MethodPost, "/inventario", admin, map[string]interface{}{"name": "Cámara", "category": "CCTV"})
	require.Equal(t, http.StatusCreated, r.status)
	id := data(t, r)["_id"].(string)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/inventario", user, nil).status)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/inventario/"+id, user, nil).status)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/inventario/resumen", user, nil).status)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPut, "/inventario/"+id, user, map[string]int{"stock": 2}).status)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodDelete, "/inventario/"+id, user, nil).status)
}

func TestInventario_UpdateParcialIgnoraClavesDesconocidas(t *testing.T) {
	s := newTestServer(t)
	tok := s.registerAndLogin(t, "Admin", "admin@x.com", "admin1234", "admin")

	r := s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{
		"name": "Switch", "category": "Networking", "brand": "TP-Link", "serialNumber": "SW-1",
	})
	require.Equal(t, http.StatusCreated, r.status)
	before := data(t, r)
	id := before["_id"].(string)

	r = s.do(t, http.MethodPut, "/inventario/"+id, tok, map[string]interface{}{
		"stock": 5, "_id": "otro", "createdAt": "2000-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, r.status, string(r.raw))

	after := data(t, s.do(t, http.MethodGet, "/inventario/"+id, tok, nil))
	assert.EqualValues(t, 5, after["stock"])
	assert.Equal(t, id, after["_id"])
	for _, k := range []string{"name", "category", "brand", "serialNumber", "status", "location", "createdAt"} {
		assert.Equal(t, before[k], after[k], k)
	}
}

func TestInventario_ErroresDeEntrada(t *testing.T) {
	s := newTestServer(t)
	tok := s.registerAndLogin(t, "Admin", "admin@x.com", "admin1234", "admin")

	r := s.do(t, http.MethodGet, "/inventario/no-es-un-id", tok, nil)
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "MALFORMED_ID", r.body["code"])

	r = s.do(t, http.MethodPut, "/inventario/00000000-0000-0000-0000-0000000000aa", tok, map[string]int{"stock": 1})
	assert.Equal(t, http.StatusNotFound, r.status)

	r = s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{"name": "X", "category": "Juguetes", "stock": -1})
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "VALIDATION", r.body["code"])
	fields := r.body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "stock")

	r = s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{"name": "X", "category": "CCTV", "stock": 3000000000})
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "El stock supera el máximo permitido", r.body["fields"].(map[string]interface{})["stock"])

	r = s.do(t, http.MethodPost, "/inventario", tok, "[1,2")
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, "INVALID_BODY", r.body["code"])

	r = s.do(t, http.MethodGet, "/inventario", tok, nil)
	assert.Equal(t, []interface{}{}, r.body["data"], "ningún intento inválido persiste")
}

func TestInventario_SerialDisperso(t *testing.T) {
	s := newTestServer(t)
	tok := s.registerAndLogin(t, "Admin", "admin@x.com", "admin1234", "admin")

	for _, name := range []string{"Mouse", "Teclado"} {
		r := s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{"name": name, "category": "Perifericos"})
		assert.Equal(t, http.StatusCreated, r.status, "sin serie no colisiona")
	}
	r := s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{"name": "A", "category": "CCTV", "serialNumber": "S-1"})
	require.Equal(t, http.StatusCreated, r.status)

	r = s.do(t, http.MethodPost, "/inventario", tok, map[string]interface{}{"name": "B", "category": "CCTV", "serialNumber": "S-1"})
	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Contains(t, r.body["fields"], "serialNumber")
}

func TestInventario_FiltrosYResumen(t *testing.T) {
	s := newTestServer(t)
	tok := s.registerAndLogin(t, "Admin", "admin@x.com", "admin1234", "admin")
	for _, body := range []map[string]interface{}{
		{"name": "Cámara domo", "category": "CCTV", "stock": 4},
		{"name": "Router", "category": "Networking", "status": "En uso"},
		{"name": "Mouse", "category": "Perifericos", "status": "Dañado", "brand": "Logitech"},
	} {
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/inventario", tok, body).status)
	}

	r := s.do(t, http.MethodGet, "/inventario?category=CCTV", tok, nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Len(t, r.body["data"], 1)

	r = s.do(t, http.MethodGet, "/inventario?q=camara", tok, nil)
	assert.Len(t, r.body["data"], 1, "búsqueda sin acentos ni mayúsculas")

	r = s.do(t, http.MethodGet, "/inventario?q=logi", tok, nil)
	assert.Len(t, r.body["data"], 1)

	r = s.do(t, http.MethodGet, "/inventario/resumen", tok, nil)
	require.Equal(t, http.StatusOK, r.status)
	summary := data(t, r)
	assert.EqualValues(t, 3, summary["total"])
	assert.EqualValues(t, 6, summary["totalStock"])
	assert.EqualValues(t, 1, summary["byStatus"].(map[string]interface{})["Dañado"])
	assert.EqualValues(t, 0, summary["byCategory"].(map[string]interface{})["Telefonía"])
}

func TestInventario_Exportaciones(t *testing.T) {
	s := newTestServer(t)
	tok := s.registerAndLogin(t, "Admin", "admin@x.com", "admin1234", "admin")

	r := s.do(t, http.MethodGet, "/inventario/export/xlsx", tok, nil)
	assert.Equal(t, http.StatusNotFound, r.status, "lista vacía no se exporta")
	assert.Equal(t, "No hay equipos para exportar", r.body["message"])

	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/inventario", tok,
		map[string]interface{}{"name": "Teléfono IP", "category": "Telefonía"}).status)

	r = s.do(t, http.MethodGet, "/inventario/export/xlsx", tok, nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Contains(t, r.header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, r.header.Get("Content-Disposition"), "inventario_maturin_")
	assert.Contains(t, r.header.Get("Content-Disposition"), ".xlsx")
	assert.True(t, bytes.HasPrefix(r.raw, []byte("PK")), "xlsx es un zip")

	r = s.do(t, http.MethodGet, "/inventario/export/pdf", tok, nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, "application/pdf", r.header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(r.raw, []byte("%PDF")))
}

func TestMe_DevuelvePerfil(t *testing.T) {
	s := newTestServer(t)
	tok := s.registerAndLogin(t, "Ana", "ana@x.com", "secret1", "")

	r := s.do(t, http.MethodGet, "/api/users/me", tok, nil)
	require.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, map[string]interface{}{"nombre": "Ana", "email": "ana@x.com", "rol": "usuario"}, r.body)

	ghost, err := s.tokens.Generate("00000000-0000-0000-0000-0000000000ff", "admin")
	require.NoError(t, err)
	r = s.do(t, http.MethodGet, "/api/users/me", ghost, nil)
	assert.Equal(t, http.StatusNotFound, r.status)
}

func TestOperacionales(t *testing.T) {
	s := newTestServer(t)
	s.app.Get("/explota", func(c *fiber.Ctx) error { panic("boom") })

	r := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, r.status)
	assert.Equal(t, "ok", r.body["status"])

	r = s.do(t, http.MethodGet, "/no/existe", "", nil)
	assert.Equal(t, http.StatusNotFound, r.status)
	assert.Equal(t, "UNKNOWN_ENDPOINT", r.body["code"])

	r = s.do(t, http.MethodGet, "/explota", "", nil)
	assert.Equal(t, http.StatusInternalServerError, r.status)
	assert.Equal(t, "INTERNAL", r.body["code"])
	assert.Equal(t, "Error interno del servidor", r.body["message"])
	assert.NotEmpty(t, r.header.Get(fiber.HeaderXRequestID))

	r = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, r.status)
	assert.Contains(t, string(r.raw), `test_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
