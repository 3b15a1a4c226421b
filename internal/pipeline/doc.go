// Package pipeline runs the per-frame target detection pipeline.
//
// ProcessFrame takes one color frame and a Parameters snapshot, finds the
// largest region whose color lies inside the configured HSV bounds, fits a
// rotated rectangle to it, and returns one of six intermediate frames chosen
// by Parameters.OutputChannel. Calls share no state, so independent frames
// may be processed concurrently.
package pipeline
