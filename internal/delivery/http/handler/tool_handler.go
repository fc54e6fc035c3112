package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-claims-service/internal/delivery/tool"
	"go-claims-service/pkg/response"

	"github.com/gorilla/mux"
)

type ToolHandler struct {
	registry *tool.Registry
}

func NewToolHandler(registry *tool.Registry) *ToolHandler {
	return &ToolHandler{
		registry: registry,
	}
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Param       string `json:"param,omitempty"`
}

// ListTools describes the tool catalog for agent frameworks
func (h *ToolHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	names := h.registry.Names()
	tools := make([]toolInfo, 0, len(names))
	for _, name := range names {
		t, _ := h.registry.Lookup(name)
		tools = append(tools, toolInfo{
			Name:        t.Name,
			Description: t.Description,
			Param:       t.Param,
		})
	}

	response.Success(w, http.StatusOK, "Tools retrieved successfully", tools)
}

type invokeRequest struct {
	Params tool.Params `json:"params"`
}

// InvokeTool runs a catalog operation by name. Per the compatibility
// contract, a failed invocation yields an empty result, not an error.
func (h *ToolHandler) InvokeTool(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req invokeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}
	if req.Params == nil {
		req.Params = tool.Params{}
	}

	result, err := h.registry.Invoke(r.Context(), vars["name"], req.Params)
	if err != nil {
		if errors.Is(err, tool.ErrUnknownTool) {
			response.NotFound(w, "Unknown tool")
			return
		}
		response.InternalServerError(w, "Failed to invoke tool")
		return
	}

	response.Success(w, http.StatusOK, "Tool invoked successfully", result)
}
