// Package server implements the MCP (Model Context Protocol) server for the
// frame vision pipeline.
//
// This package provides a JSON-RPC 2.0 server that exposes target detection
// and its tuning controls through the MCP protocol, so an MCP client can run
// frames through the pipeline, inspect every intermediate output, and adjust
// the color and threshold bounds until the target is picked out reliably.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Frame Information:
//   - vision_load: Load a frame and get metadata
//   - vision_sample_color: Get a pixel's color in pipeline HSV units
//
// Pipeline:
//   - vision_process_frame: Run detection and return the selected output
//   - vision_find_contours: Trace every contour of the grayscale frame
//   - vision_edge_detect: Canny edge detection
//
// Parameters:
//   - vision_get_parameters: Read the current settings
//   - vision_set_parameters: Change some or all settings
//   - vision_save_parameters: Write the settings to a YAML file
//   - vision_load_parameters: Replace the settings from a YAML file
//
// # Frame Caching
//
// Frames are cached by path and reused across tool calls while the file's size
// and modification time stay the same. A host that overwrites one path with
// each new camera frame gets the new frame on the next call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	store := config.NewStore(pipeline.DefaultParameters())
//	srv := server.New(server.WithParameters(store))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
