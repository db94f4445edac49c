package main

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	MIME_HTML  = "text/html; charset=utf-8"
	MIME_JSON  = "application/json; charset=utf-8"
	MIME_PLAIN = "text/plain; charset=utf-8"
)

// queryParam descreve um parâmetro da query e como ele segue para o portal.
type queryParam struct {
	Name     string
	Field    string
	Default  string
	Required bool
	Session  bool
}

var (
	paramRollNo  = queryParam{Name: "rollno", Field: "rollNo", Required: true}
	paramSemID   = queryParam{Name: "semid", Field: "semid", Default: DEFAULT_SEMID}
	paramSession = queryParam{Name: "session", Field: "session", Default: DEFAULT_SESSION, Session: true}
	paramDOB     = queryParam{Name: "dob", Field: "dob", Default: DEFAULT_DOB}
)

// buildForm monta o formulário do portal a partir da query. Valor vazio conta como ausente.
func buildForm(c *gin.Context, params ...queryParam) (url.Values, error) {
	form := url.Values{}
	for _, p := range params {
		value := c.Query(p.Name)
		if value == "" {
			if p.Required {
				return nil, &ParamError{Param: p.Name}
			}
			value = p.Default
		}
		if p.Session {
			value = DisplayName(value)
		}
		form.Set(p.Field, value)
	}
	return form, nil
}

type Server struct {
	cfg       Config
	bput      *BputClient
	extractor OptionExtractor
	logger    *zap.Logger
}

// NewRouter monta o gin.Engine com as seis rotas públicas.
func NewRouter(cfg Config, client *BputClient, extractor OptionExtractor, logger *zap.Logger) *gin.Engine {
	s := &Server{cfg: cfg, bput: client, extractor: extractor, logger: logger}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.Use(Recovery(logger))
	router.Use(RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/", s.handleHome)
	router.GET("/details", s.handleDetails)
	router.GET("/results", s.handleResults)
	router.GET("/examinfo", s.handleExamInfo)
	router.GET("/sgpa", s.handleSgpa)
	router.GET("/allsession", s.handleAllSession)

	if cfg.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return router
}

func corsConfig(cfg Config) cors.Config {
	conf := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if cfg.allowAllOrigins() {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = cfg.CORSOrigins
	}
	return conf
}

// @Summary Página inicial (template HTML remoto)
// @Tags Pages
// @Produce html
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router / [get]
func (s *Server) handleHome(c *gin.Context) {
	page, err := s.bput.FetchPage(c.Request.Context(), s.cfg.TemplateURL)
	if err != nil {
		s.plainError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, MIME_HTML, []byte(page))
}

// @Summary Dados do aluno
// @Tags BPUT
// @Produce json
// @Param rollno query string true "Número de matrícula"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /details [get]
func (s *Server) handleDetails(c *gin.Context) {
	s.proxyJSON(c, PATH_STUDENT_DETAILS, paramRollNo)
}

// @Summary Lista de disciplinas com notas
// @Tags BPUT
// @Produce json,html
// @Param rollno query string true "Número de matrícula"
// @Param semid query string false "Semestre" default(4)
// @Param session query string false "Código da sessão (ex: E24)" default(E24)
// @Param html query string false "Se presente, devolve uma tabela HTML"
// @Success 200 {array} SubjectResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {string} string
// @Router /results [get]
func (s *Server) handleResults(c *gin.Context) {
	form, err := buildForm(c, paramRollNo, paramSemID, paramSession)
	if err != nil {
		s.jsonError(c, http.StatusBadRequest, err)
		return
	}

	payload, err := s.bput.Call(c.Request.Context(), PATH_SUBJECTS_LIST, form, http.MethodPost)
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, err)
		return
	}

	if _, wantHTML := c.GetQuery("html"); !wantHTML {
		c.Data(http.StatusOK, MIME_JSON, payload.Raw)
		return
	}

	rows, err := payload.SubjectResults()
	if err != nil {
		s.plainError(c, http.StatusBadGateway, err)
		return
	}
	page, err := RenderResultsTable(rows)
	if err != nil {
		s.plainError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, MIME_HTML, page)
}

// @Summary Informações do exame
// @Tags BPUT
// @Produce json
// @Param rollno query string true "Número de matrícula"
// @Param dob query string false "Data de nascimento" default(2009-07-14)
// @Param session query string false "Código da sessão (ex: E24)" default(E24)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /examinfo [get]
func (s *Server) handleExamInfo(c *gin.Context) {
	s.proxyJSON(c, PATH_RESULTS_LIST, paramRollNo, paramDOB, paramSession)
}

// @Summary SGPA do semestre
// @Tags BPUT
// @Produce json
// @Param rollno query string true "Número de matrícula"
// @Param semid query string false "Semestre" default(4)
// @Param session query string false "Código da sessão (ex: E24)" default(E24)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sgpa [get]
func (s *Server) handleSgpa(c *gin.Context) {
	s.proxyJSON(c, PATH_RESULTS_SGPA, paramRollNo, paramSemID, paramSession)
}

// @Summary Sessões disponíveis no portal
// @Tags BPUT
// @Produce json
// @Success 200 {array} SessionListing
// @Failure 500 {object} ErrorResponse
// @Router /allsession [get]
func (s *Server) handleAllSession(c *gin.Context) {
	sessions, err := ScrapeSessions(c.Request.Context(), s.bput, s.extractor, s.cfg.LandingURL)
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, err)
		return
	}
	s.logger.Debug("sessões extraídas", zap.Int("count", len(sessions)), zap.String("extractor", s.cfg.OptionExtractor))
	c.JSON(http.StatusOK, sessions)
}

func (s *Server) proxyJSON(c *gin.Context, upstreamPath string, params ...queryParam) {
	form, err := buildForm(c, params...)
	if err != nil {
		s.jsonError(c, http.StatusBadRequest, err)
		return
	}

	payload, err := s.bput.Call(c.Request.Context(), upstreamPath, form, http.MethodPost)
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, MIME_JSON, payload.Raw)
}

// Os erros ficam em c.Errors e saem no log do RequestLogger.
func (s *Server) jsonError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

func (s *Server) plainError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.Data(status, MIME_PLAIN, []byte("Error: "+err.Error()))
	c.Abort()
}
