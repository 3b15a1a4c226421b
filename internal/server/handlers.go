package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/frame-vision-mcp/internal/config"
	"github.com/ironsheep/frame-vision-mcp/internal/detection"
	"github.com/ironsheep/frame-vision-mcp/internal/imaging"
	"github.com/ironsheep/frame-vision-mcp/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "vision_load", "vision_process_frame").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.debug {
		log.Printf("tool %s took %s (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills optional parameters from the current settings or fixed defaults
//  3. Loads frames from cache as needed
//  4. Calls the appropriate imaging/pipeline function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Frame Information
	case "vision_load":
		return s.handleVisionLoad(args)
	case "vision_sample_color":
		return s.handleVisionSampleColor(args)

	// Pipeline
	case "vision_process_frame":
		return s.handleVisionProcessFrame(args)
	case "vision_find_contours":
		return s.handleVisionFindContours(args)
	case "vision_edge_detect":
		return s.handleVisionEdgeDetect(args)

	// Parameters
	case "vision_get_parameters":
		return s.handleVisionGetParameters()
	case "vision_set_parameters":
		return s.handleVisionSetParameters(args)
	case "vision_save_parameters":
		return s.handleVisionSaveParameters(args)
	case "vision_load_parameters":
		return s.handleVisionLoadParameters(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Frame Information Handlers ===

type visionLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleVisionLoad(args json.RawMessage) (interface{}, error) {
	var a visionLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadFrameInfo(s.cache, a.Path)
}

type visionSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleVisionSampleColor(args json.RawMessage) (interface{}, error) {
	var a visionSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Parameter Handling ===

// parameterPatch holds optional parameter values. A nil field leaves the
// parameter unchanged.
type parameterPatch struct {
	HueLow     *int `json:"hue_low"`
	HueHigh    *int `json:"hue_high"`
	SatLow     *int `json:"sat_low"`
	SatHigh    *int `json:"sat_high"`
	ValLow     *int `json:"val_low"`
	ValHigh    *int `json:"val_high"`
	BinaryLow  *int `json:"binary_low"`
	BinaryHigh *int `json:"binary_high"`

	OutputChannel     *int   `json:"output_channel"`
	OutputChannelName string `json:"output_channel_name"`
}

// apply copies every set field into p. output_channel_name wins over
// output_channel when both are given. p is untouched when the name is unknown.
func (pp parameterPatch) apply(p *pipeline.Parameters) error {
	named := pipeline.OutputChannel(0)
	if pp.OutputChannelName != "" {
		c, err := pipeline.ParseOutputChannel(pp.OutputChannelName)
		if err != nil {
			return err
		}
		named = c
	}

	fields := []struct {
		src *int
		dst *int
	}{
		{pp.HueLow, &p.HueLow},
		{pp.HueHigh, &p.HueHigh},
		{pp.SatLow, &p.SatLow},
		{pp.SatHigh, &p.SatHigh},
		{pp.ValLow, &p.ValLow},
		{pp.ValHigh, &p.ValHigh},
		{pp.BinaryLow, &p.BinaryLow},
		{pp.BinaryHigh, &p.BinaryHigh},
	}
	for _, f := range fields {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if pp.OutputChannel != nil {
		p.OutputChannel = pipeline.OutputChannel(*pp.OutputChannel)
	}
	if named != 0 {
		p.OutputChannel = named
	}
	return nil
}

// parametersResult is the JSON view of a parameter set.
type parametersResult struct {
	Parameters        pipeline.Parameters `json:"parameters"`
	OutputChannelName string              `json:"output_channel_name"`
	Path              string              `json:"path,omitempty"`
}

func newParametersResult(p pipeline.Parameters) *parametersResult {
	return &parametersResult{
		Parameters:        p,
		OutputChannelName: p.OutputChannel.Resolve().String(),
	}
}

func (s *Server) handleVisionGetParameters() (interface{}, error) {
	return newParametersResult(s.params.Snapshot()), nil
}

func (s *Server) handleVisionSetParameters(args json.RawMessage) (interface{}, error) {
	var a parameterPatch
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var patchErr error
	p, err := s.params.Update(func(p *pipeline.Parameters) {
		patchErr = a.apply(p)
	})
	if patchErr != nil {
		return nil, patchErr
	}
	if err != nil {
		return nil, err
	}
	return newParametersResult(p), nil
}

type visionSaveParametersArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleVisionSaveParameters(args json.RawMessage) (interface{}, error) {
	var a visionSaveParametersArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	p := s.params.Snapshot()
	if err := config.SaveFile(a.Path, p); err != nil {
		return nil, err
	}

	res := newParametersResult(p)
	res.Path = a.Path
	return res, nil
}

func (s *Server) handleVisionLoadParameters(args json.RawMessage) (interface{}, error) {
	var a visionSaveParametersArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	p, err := config.LoadFile(a.Path)
	if err != nil {
		return nil, err
	}
	if err := s.params.Replace(p); err != nil {
		return nil, err
	}

	res := newParametersResult(p)
	res.Path = a.Path
	return res, nil
}

// === Pipeline Handlers ===

type visionProcessFrameArgs struct {
	Path string `json:"path"`
	parameterPatch
}

// ProcessFrameResult is returned by vision_process_frame.
type ProcessFrameResult struct {
	FrameID           string                 `json:"frame_id"`
	OutputChannel     int                    `json:"output_channel"`
	OutputChannelName string                 `json:"output_channel_name"`
	TargetFound       bool                   `json:"target_found"`
	SelectedIndex     int                    `json:"selected_index"`
	MaxContourArea    float64                `json:"max_contour_area"`
	ContourCount      int                    `json:"contour_count"`
	SceneContourCount int                    `json:"scene_contour_count"`
	Target            *detection.Contour     `json:"target,omitempty"`
	Rect              *detection.RotatedRect `json:"rect,omitempty"`
	Bounds            *detection.Bounds      `json:"bounds,omitempty"`
	DurationMS        float64                `json:"duration_ms"`
	Frame             *imaging.EncodedFrame  `json:"frame"`
}

func (s *Server) handleVisionProcessFrame(args json.RawMessage) (interface{}, error) {
	var a visionProcessFrameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	p := s.params.Snapshot()
	if err := a.apply(&p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	frameID := s.newID()
	start := time.Now()
	res, err := pipeline.ProcessFrame(img, p)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	s.reporter.ReportFrame(pipeline.NewFrameReport(frameID, res, elapsed))

	frame, err := imaging.EncodePNG(res.Frame)
	if err != nil {
		return nil, err
	}

	out := &ProcessFrameResult{
		FrameID:           frameID,
		OutputChannel:     int(res.OutputChannel),
		OutputChannelName: res.OutputChannel.String(),
		TargetFound:       res.TargetFound(),
		SelectedIndex:     res.SelectedIndex,
		MaxContourArea:    res.MaxContourArea,
		ContourCount:      res.ContourCount,
		SceneContourCount: res.SceneContourCount,
		Target:            res.Target,
		Rect:              res.Rect,
		DurationMS:        float64(elapsed.Microseconds()) / 1000,
		Frame:             frame,
	}
	if res.Rect != nil {
		b := res.Rect.Bounds()
		out.Bounds = &b
	}
	return out, nil
}

type visionFindContoursArgs struct {
	Path       string `json:"path"`
	BinaryLow  *int   `json:"binary_low"`
	BinaryHigh *int   `json:"binary_high"`
}

// FindContoursResult is returned by vision_find_contours.
type FindContoursResult struct {
	ContourCount int                   `json:"contour_count"`
	Contours     []detection.Contour   `json:"contours"`
	Frame        *imaging.EncodedFrame `json:"frame"`
}

func (s *Server) handleVisionFindContours(args json.RawMessage) (interface{}, error) {
	var a visionFindContoursArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	p := s.params.Snapshot()
	low, high := p.BinaryLow, p.BinaryHigh
	if a.BinaryLow != nil {
		low = *a.BinaryLow
	}
	if a.BinaryHigh != nil {
		high = *a.BinaryHigh
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := pipeline.DetectSceneContours(img, low, high)
	if err != nil {
		return nil, err
	}
	frame, err := imaging.EncodePNG(res.Frame)
	if err != nil {
		return nil, err
	}

	contours := res.Contours
	if contours == nil {
		contours = []detection.Contour{}
	}
	return &FindContoursResult{
		ContourCount: len(contours),
		Contours:     contours,
		Frame:        frame,
	}, nil
}

type visionEdgeDetectArgs struct {
	Path          string `json:"path"`
	ThresholdLow  int    `json:"threshold_low"`
	ThresholdHigh int    `json:"threshold_high"`
}

func (s *Server) handleVisionEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a visionEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ThresholdLow == 0 {
		a.ThresholdLow = 50
	}
	if a.ThresholdHigh == 0 {
		a.ThresholdHigh = 150
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.EdgeDetect(img, a.ThresholdLow, a.ThresholdHigh))
}
