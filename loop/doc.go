// SPDX-License-Identifier: EPL-2.0

// Package loop renders a looping clip into device-sized output blocks.
//
// Three pieces are shared between the control path (UI, CLI, file loading)
// and the real-time render path:
//
//   - Store publishes the clip as an immutable *audio.Buffer.
//   - Params holds level, jitter fraction and fade length as atomics.
//   - Renderer owns the play cursor and is driven by the device, one Block
//     at a time.
//
// Render never blocks, allocates or fails. Per block it:
//
//  1. writes silence if no clip is loaded;
//  2. rewinds the cursor to 0 when the block would reach the end of the
//     clip (up to N-1 trailing frames are skipped once per cycle instead of
//     splitting the block at the seam);
//  3. picks the read position, randomly offset when jitter is enabled;
//  4. copies N frames into every output channel, repeating input channels
//     modulo the input channel count (mono feeds any number of outputs);
//  5. ramps the gain linearly from the previous block's level to the
//     current one;
//  6. applies the edge fade window;
//  7. advances the cursor by N from its un-jittered position.
//
// Jitter and fade are disabled by their zero values, so the plain looper
// and the jittered, faded looper are the same Renderer.
package loop
