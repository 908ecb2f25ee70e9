// Package factorymethod shows the Factory Method pattern: Dialog.Render is a
// template whose button comes from a ButtonCreator hook supplied per platform.
package factorymethod
