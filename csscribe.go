// Package csscribe turns loosely phrased lines into CSS through a chat
// completion endpoint and keeps a small dictionary of the CSS variables and
// class names a user has seen.
//
// # Recording
//
// Record the active line of an editor into the dictionary:
//
//	rec := csscribe.NewRecorder(storageDir)
//	result, err := rec.Record(ctx, editor)
//
// Every "--name: value" declaration overwrites the stored value for that
// name, and every ".class" token is appended once.
//
// # Transforming
//
// Replace the active line with the model's CSS:
//
//	d := csscribe.NewDispatcher(func(context.Context) csscribe.TransformSettings {
//		return csscribe.TransformSettings{APIKey: key}
//	})
//	err := d.Transform(ctx, editor)
//
// # Hosts
//
// The editor is any implementation of Editor. The csscribe CLI ships a
// file/pipe host and a Neovim remote plugin. Install with:
//
//	go install github.com/yacobolo/csscribe/cmd/csscribe@latest
package csscribe
