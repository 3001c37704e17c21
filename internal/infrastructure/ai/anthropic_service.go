package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	complianceSystemPrompt = `Eres un experto en normativa de construcción y seguridad industrial en Colombia (SG-SST, NSR-10, resoluciones del Ministerio de Trabajo).
Recibes la descripción de unos trabajos de obra y devuelves ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "suggestions": [
    {
      "title": "<título corto de la medida>",
      "detail": "<explicación concisa en español, máximo 300 caracteres>",
      "severity": "<low | medium | high>"
    }
  ]
}

Reglas:
- Entre 3 y 6 sugerencias, ordenadas de mayor a menor severidad.
- severity refleja el riesgo de omitir la medida: high = riesgo de vida o sanción grave.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`

	riskSystemPrompt = `Eres un analista de riesgos de proyectos de construcción.
Recibes un snapshot JSON de un proyecto (estado, presupuesto, gasto, solicitudes abiertas, facturas vencidas) y devuelves ÚNICAMENTE un objeto JSON válido (sin markdown) con esta estructura exacta:
{
  "risk_level": "<low | medium | high>",
  "summary": "<análisis conciso en español, máximo 500 caracteres>"
}

Reglas:
- high si el gasto supera el presupuesto o hay señales combinadas (sobrecosto + facturas vencidas).
- medium si hay una señal aislada de alerta.
- low si las cifras están dentro de lo esperado.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// SuggestCompliance envía la descripción de los trabajos a Claude y devuelve
// las sugerencias de cumplimiento normativo.
func (s *AnthropicService) SuggestCompliance(ctx context.Context, description string) (*dto.ComplianceSuggestionsDTO, error) {
	raw, err := s.complete(ctx, complianceSystemPrompt, description)
	if err != nil {
		return nil, err
	}
	var out dto.ComplianceSuggestionsDTO
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de cumplimiento: %w (JSON extraído: %s)", err, raw)
	}
	for i := range out.Suggestions {
		out.Suggestions[i].Severity = normalizeSeverity(out.Suggestions[i].Severity)
	}
	return &out, nil
}

// AnalyzeProjectRisk serializa el snapshot del proyecto y pide a Claude el
// análisis de riesgo.
func (s *AnthropicService) AnalyzeProjectRisk(ctx context.Context, input dto.ProjectRiskInputDTO) (*dto.ProjectRiskDTO, error) {
	snapshot, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar snapshot: %w", err)
	}
	raw, err := s.complete(ctx, riskSystemPrompt, string(snapshot))
	if err != nil {
		return nil, err
	}
	var out dto.ProjectRiskDTO
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de riesgo: %w (JSON extraído: %s)", err, raw)
	}
	out.RiskLevel = normalizeSeverity(out.RiskLevel)
	return &out, nil
}

// complete ejecuta una vuelta request/response contra la Messages API y
// devuelve el bloque JSON extraído del texto de la respuesta.
func (s *AnthropicService) complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	rawText := anthResp.Content[0].Text
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return "", fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}
	return cleanJSON, nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}

// normalizeSeverity acota el nivel a low | medium | high.
func normalizeSeverity(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "medium", "high":
		return strings.ToLower(strings.TrimSpace(s))
	default:
		return "medium"
	}
}
