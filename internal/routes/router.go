package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/v1ctorsales/QuoVadis/internal/handlers"
	"github.com/v1ctorsales/QuoVadis/internal/middleware"
)

// Handlers agrupa os handlers que o roteador expõe.
type Handlers struct {
	Pessoas     *handlers.PessoaHandler
	Viagens     *handlers.ViagemHandler
	Passageiros *handlers.PassageiroHandler
	Inicio      *handlers.InicioHandler
	Auth        *handlers.AuthHandler
	NFE         *handlers.NFEHandler
}

// SetupRoutes monta o roteador completo da aplicação.
func SetupRoutes(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas públicas: login e a saudação de teste do front.
	registrar(r, "/api/Autenticar", h.Auth.Dispatch)
	r.GET("/api/data", handlers.Saudacao)

	protegido := r.Group("/")
	protegido.Use(middleware.AuthMiddleware(jwtSecret))
	{
		RegisterAPIRoutes(protegido, h)
	}

	return r
}

// RegisterAPIRoutes registra os endpoints de dados, todos atrás do JWT.
func RegisterAPIRoutes(rg *gin.RouterGroup, h Handlers) {
	registrarGrupo(rg, "/api/Pessoas", h.Pessoas.Dispatch)
	registrarGrupo(rg, "/api/Viagens", h.Viagens.Dispatch)
	registrarGrupo(rg, "/api/Passageiros", h.Passageiros.Dispatch)
	registrarGrupo(rg, "/api/Inicio", h.Inicio.Dispatch)
	registrarGrupo(rg, "/api/NFE", h.NFE.Dispatch)
	rg.GET("/api/getPessoas", h.Pessoas.ListAll)
}

// O front chama tanto /api/Nome quanto /api/Nome.js, então as duas grafias
// apontam para o mesmo dispatcher.
func registrar(r *gin.Engine, caminho string, fn gin.HandlerFunc) {
	r.Any(caminho, fn)
	r.Any(caminho+".js", fn)
}

func registrarGrupo(rg *gin.RouterGroup, caminho string, fn gin.HandlerFunc) {
	rg.Any(caminho, fn)
	rg.Any(caminho+".js", fn)
}
