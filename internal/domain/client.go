package domain

// Client is an external organization that at most one Project works for.
type Client struct {
	ID       int64     `json:"-"`
	Name     string    `json:"name"`
	Industry Industry  `json:"industry"`
	JoinDate string    `json:"join_date"`
	Projects *NamedRef `json:"projects"`
}

// Kind implements Entity.
func (c *Client) Kind() Kind { return KindClient }

// Identity implements Entity.
func (c *Client) Identity() int64 { return c.ID }

func (c *Client) setIdentity(id int64) { c.ID = id }

// Document encodes the client for the store.
func (c *Client) Document() (Document, error) {
	return NewDocument(KindClient, c.ID, c)
}

// LinkedProject implements Member.
func (c *Client) LinkedProject() *NamedRef { return c.Projects }

// SetLinkedProject implements Member.
func (c *Client) SetLinkedProject(ref *NamedRef) { c.Projects = ref }
