// Package abstractfactory shows the Abstract Factory pattern: a GUIFactory
// produces a family of matching widgets and the Client paints them without
// knowing which platform they belong to.
package abstractfactory
