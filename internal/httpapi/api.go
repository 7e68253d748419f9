package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartin/promptsynth/internal/catalog"
	"github.com/rmartin/promptsynth/internal/domain"
	"github.com/rmartin/promptsynth/internal/service"
	"github.com/rmartin/promptsynth/internal/session"
)

const sessionCookieName = "synth_session"

// maxAudioBytes caps voice uploads at 20 MiB.
const maxAudioBytes = 20 << 20

type API struct {
	generator *service.Generator
	sessions  *session.Manager
	devMode   bool
	logger    *zap.Logger
}

// ensureSession attaches a session state to every request, minting a fresh
// one (and cookie) when none exists.
func (api *API) ensureSession(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil {
		if state, ok := api.sessions.Get(token); ok {
			c.Set("session", state)
			c.Next()
			return
		}
	}

	token, state := api.sessions.Create()
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Set("session", state)
	c.Next()
}

// requireUser blocks everything behind the login gate.
func (api *API) requireUser(c *gin.Context) {
	if !api.state(c).Gate.LoggedIn() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login_required"})
		return
	}
	c.Next()
}

func (api *API) state(c *gin.Context) *session.State {
	return c.MustGet("session").(*session.State)
}

// --- auth ---

func (api *API) login(c *gin.Context) {
	var payload struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "username and password are required")
		return
	}

	state := api.state(c)
	if err := state.Gate.Login(payload.Username, payload.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": state.Gate.User(),
		"tip":  state.Tip,
	})
}

func (api *API) logout(c *gin.Context) {
	api.state(c).Reset()
	c.Status(http.StatusNoContent)
}

func (api *API) currentSession(c *gin.Context) {
	state := api.state(c)
	c.JSON(http.StatusOK, gin.H{
		"logged_in":         state.Gate.LoggedIn(),
		"user":              state.Gate.User(),
		"selected_template": state.SelectedTemplate,
		"tip":               state.Tip,
	})
}

func (api *API) meta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tip":      api.state(c).Tip,
		"sign_off": catalog.RandomSignOff(),
	})
}

// --- form vocabulary ---

func (api *API) listTones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tones": domain.ValidTones})
}

func (api *API) listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formats": domain.OutputTypes})
}

// --- templates ---

func (api *API) listTemplates(c *gin.Context) {
	type categoryResponse struct {
		Name      string            `json:"name"`
		Emoji     string            `json:"emoji"`
		Templates []domain.Template `json:"templates"`
	}

	out := make([]categoryResponse, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		templates := make([]domain.Template, 0, len(cat.Templates))
		for _, tpl := range cat.Templates {
			tpl.Category = cat.Name
			templates = append(templates, tpl)
		}
		out = append(out, categoryResponse{Name: cat.Name, Emoji: cat.Emoji, Templates: templates})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func (api *API) getTemplate(c *gin.Context) {
	tpl, ok := catalog.Get(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (api *API) selectTemplate(c *gin.Context) {
	var payload struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "name is required")
		return
	}

	tpl, ok := catalog.Get(payload.Name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
		return
	}

	api.state(c).SelectedTemplate = tpl.Name
	c.JSON(http.StatusOK, tpl)
}

func (api *API) surpriseTemplate(c *gin.Context) {
	tpl := catalog.Random()
	api.state(c).SelectedTemplate = tpl.Name
	c.JSON(http.StatusOK, tpl)
}

// --- generation ---

type generateRequest struct {
	Goal       string `json:"goal"`
	Tone       string `json:"tone"`
	OutputType string `json:"output_type"`
	Audience   string `json:"audience"`
	Depth      int    `json:"depth"`
	GodMode    bool   `json:"god_mode"`
	Save       bool   `json:"save"`
}

func (r generateRequest) toDomain() domain.GenerationRequest {
	depth := r.Depth
	if depth == 0 {
		depth = 1
	}
	return domain.GenerationRequest{
		Goal:       r.Goal,
		Tone:       domain.NormalizeTone(domain.Tone(r.Tone)),
		OutputType: domain.NormalizeOutputType(domain.OutputType(r.OutputType)),
		Audience:   r.Audience,
		Depth:      depth,
		GodMode:    r.GodMode,
	}
}

func (api *API) generate(c *gin.Context) {
	var payload generateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "invalid request body")
		return
	}
	if payload.Depth < 0 || payload.Depth > 5 {
		api.validationError(c, "depth must be between 1 and 5")
		return
	}

	req := payload.toDomain()
	res, err := api.generator.Generate(c.Request.Context(), req)
	if err != nil {
		api.generationError(c, err)
		return
	}

	state := api.state(c)
	state.LastRequest = &req

	api.respondResult(c, state, req, res, payload.Save)
}

func (api *API) remix(c *gin.Context) {
	var payload struct {
		Save bool `json:"save"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&payload)

	state := api.state(c)
	if state.LastRequest == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing_to_remix"})
		return
	}

	next, res, err := api.generator.Remix(c.Request.Context(), *state.LastRequest)
	if err != nil {
		api.generationError(c, err)
		return
	}

	state.LastRequest = &next
	api.respondResult(c, state, next, res, payload.Save)
}

// respondResult renders a successful generation, appending to history when
// asked. A save failure is a warning on a 200, never a request failure.
func (api *API) respondResult(c *gin.Context, state *session.State, req domain.GenerationRequest, res domain.GenerationResult, save bool) {
	body := gin.H{
		"prompt":      res.Prompt,
		"timestamp":   res.Timestamp,
		"tone":        req.Tone,
		"output_type": req.OutputType,
		"filename":    downloadName(res.Timestamp),
		"saved":       false,
	}

	if save {
		if err := api.generator.Save(state.Gate.User(), req, res); err != nil {
			body["warning"] = "failed to save history"
		} else {
			body["saved"] = true
		}
	}

	c.JSON(http.StatusOK, body)
}

func (api *API) transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		api.validationError(c, "audio file is required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil || len(audio) == 0 {
		api.validationError(c, "could not read audio upload")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	text, err := api.generator.Transcribe(c.Request.Context(), audio, mimeType)
	if err != nil {
		// The form stays usable with manual goal entry after a failure.
		api.generationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": text})
}

// --- history ---

func (api *API) listHistory(c *gin.Context) {
	records := api.generator.History(api.state(c).Gate.User())
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (api *API) exportHistory(c *gin.Context) {
	data, err := api.generator.ExportHistory(api.state(c).Gate.User())
	if err != nil {
		api.internalError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="prompt_history.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (api *API) downloadPrompt(c *gin.Context) {
	var payload struct {
		Prompt    string `json:"prompt" binding:"required"`
		Timestamp string `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "prompt is required")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, downloadName(payload.Timestamp)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(payload.Prompt))
}

// --- error rendering ---

func (api *API) validationError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "message": msg})
}

func (api *API) generationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyGoal):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_goal", "message": "Please enter a goal."})
	case errors.Is(err, domain.ErrEmptyResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": "empty_response", "message": "Empty response. Try again."})
	case errors.Is(err, domain.ErrInsufficientVariants):
		c.JSON(http.StatusConflict, gin.H{"error": "insufficient_variants"})
	case errors.Is(err, domain.ErrModel):
		body := gin.H{"error": "model_error"}
		if api.devMode {
			body["detail"] = err.Error()
		}
		c.JSON(http.StatusBadGateway, body)
	default:
		api.internalError(c, err)
	}
}

func (api *API) internalError(c *gin.Context, err error) {
	api.logger.Error("request failed", zap.Error(err))
	body := gin.H{"error": "internal_error"}
	if api.devMode {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// downloadName derives the text artifact filename from a result timestamp,
// falling back to the current time when it does not parse.
func downloadName(timestamp string) string {
	t, err := time.ParseInLocation(domain.TimestampLayout, strings.TrimSpace(timestamp), time.Local)
	if err != nil {
		t = time.Now()
	}
	return fmt.Sprintf("prompt_%s.txt", t.Format("20060102_150405"))
}
