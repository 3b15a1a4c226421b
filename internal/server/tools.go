package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the frame image file",
	}
}

func boundProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
		"minimum":     0,
		"maximum":     255,
	}
}

// parameterProperties describes every tunable parameter. All of them are
// optional wherever they appear.
func parameterProperties() map[string]interface{} {
	return map[string]interface{}{
		"hue_low":     boundProperty("Lower hue bound, degrees/2 (0-179)"),
		"hue_high":    boundProperty("Upper hue bound, degrees/2 (0-179). A value below hue_low selects nothing; hue does not wrap"),
		"sat_low":     boundProperty("Lower saturation bound (0-255)"),
		"sat_high":    boundProperty("Upper saturation bound (0-255)"),
		"val_low":     boundProperty("Lower value (brightness) bound (0-255)"),
		"val_high":    boundProperty("Upper value (brightness) bound (0-255)"),
		"binary_low":  boundProperty("Intensities from binary_low to binary_high become background in the inverted threshold"),
		"binary_high": boundProperty("See binary_low"),
		"output_channel": map[string]interface{}{
			"type":        "integer",
			"description": "Returned frame: 1=raw, 2=gray, 3=hsv, 4=all_contours, 5=max_contour, 6=bounding_rect. Unknown values fall back to 4",
		},
		"output_channel_name": map[string]interface{}{
			"type":        "string",
			"description": "Returned frame by name; overrides output_channel",
			"enum":        []string{"raw", "gray", "hsv", "all_contours", "max_contour", "bounding_rect"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	processProps := parameterProperties()
	processProps["path"] = pathProperty()

	return []Tool{
		// Frame Information
		{
			Name:        "vision_load",
			Description: "Load a frame image and return its dimensions, format and channel count. The decoded frame is cached until the file changes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "vision_sample_color",
			Description: "Get the color of one pixel as hex, RGB and HSV. HSV uses the same units as the segmentation bounds, so the values can be used to tune hue_low/hue_high and the other bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0 = left edge)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0 = top edge)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Pipeline
		{
			Name:        "vision_process_frame",
			Description: "Run the target detection pipeline on a frame. Finds the largest region inside the HSV bounds, fits a rotated rectangle to it, and returns the selected output frame as base64 PNG with the target geometry. Parameters given here apply to this call only; omitted ones come from the current settings.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": processProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "vision_find_contours",
			Description: "Trace every contour in the grayscale frame under the inverted binary threshold and return the frame with the contours drawn, plus the contour list.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"binary_low":  boundProperty("Lower threshold bound. Default: current setting"),
					"binary_high": boundProperty("Upper threshold bound. Default: current setting"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "vision_edge_detect",
			Description: "Apply Canny edge detection and return the edge frame as base64 PNG (white edges on black).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"threshold_low": map[string]interface{}{
						"type":        "integer",
						"description": "Low hysteresis threshold (0-255). Default: 50",
						"default":     50,
					},
					"threshold_high": map[string]interface{}{
						"type":        "integer",
						"description": "High hysteresis threshold (0-255). Default: 150",
						"default":     150,
					},
				},
				"required": []string{"path"},
			},
		},

		// Parameters
		{
			Name:        "vision_get_parameters",
			Description: "Return the current pipeline parameters.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "vision_set_parameters",
			Description: "Change one or more pipeline parameters. Omitted parameters keep their value. The update is rejected as a whole if any bound is outside 0-255.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": parameterProperties(),
			},
		},
		{
			Name:        "vision_save_parameters",
			Description: "Write the current pipeline parameters to a YAML file that can be loaded at startup.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the YAML file to write",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "vision_load_parameters",
			Description: "Replace the current pipeline parameters with a YAML preset. Keys missing from the file take their default value. Nothing changes if the file is invalid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the YAML file to read",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
