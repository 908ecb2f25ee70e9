// Package builder shows the Builder pattern. A Director replays fixed recipes
// against any Builder, so the same steps yield a Car from CarBuilder and a
// Manual from ManualBuilder.
package builder
