package abstractfactory

import "io"

// Client builds and paints a small UI through whatever factory it was given.
type Client struct {
	factory  GUIFactory
	button   Button
	checkbox Checkbox
}

func NewClient(f GUIFactory) *Client {
	return &Client{factory: f}
}

// CreateUI creates one button and one checkbox.
func (c *Client) CreateUI() {
	c.button = c.factory.CreateButton()
	c.checkbox = c.factory.CreateCheckbox()
}

// Paint paints the widgets created so far. Before CreateUI it writes nothing.
func (c *Client) Paint(w io.Writer) {
	if c.button != nil {
		c.button.Paint(w)
	}
	if c.checkbox != nil {
		c.checkbox.Paint(w)
	}
}
