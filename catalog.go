package freshrag

// FallbackEndpoints returns the built-in catalog of the five canonical
// ticket operations. It is used when extraction finds nothing in the source
// markup, so the retrieval engine always has a non-empty corpus to score
// against.
func FallbackEndpoints() []*Endpoint {
	return []*Endpoint{
		{
			Name:        "Create Ticket",
			Description: "Create a new ticket in Freshservice",
			Method:      "POST",
			Path:        "/api/v2/tickets",
			Parameters: []Parameter{
				{Name: "subject", Type: TypeString, Description: "Subject of the ticket", Required: true},
				{Name: "description", Type: TypeString, Description: "HTML content of the ticket", Required: true},
				{Name: "email", Type: TypeString, Description: "Email address of the requester", Required: true},
				{Name: "priority", Type: TypeInteger, Description: "Priority of the ticket (1-4)", Required: false, Default: strptr("1")},
				{Name: "status", Type: TypeInteger, Description: "Status of the ticket (2-5)", Required: false, Default: strptr("2")},
			},
			CurlExample: `curl -v -u yourapikey:X -H "Content-Type: application/json" -d '{"subject":"Ticket Title","description":"<h2>Ticket content</h2>","email":"requester@example.com"}' -X POST "https://domain.freshservice.com/api/v2/tickets"`,
		},
		{
			Name:        "Get Ticket",
			Description: "Retrieve a specific ticket by ID",
			Method:      "GET",
			Path:        "/api/v2/tickets/{id}",
			Parameters: []Parameter{
				{Name: "id", Type: TypeInteger, Description: "Ticket ID", Required: true},
				{Name: "include", Type: TypeString, Description: "Embed additional resources such as stats or requester details", Required: false},
			},
			CurlExample: `curl -v -u yourapikey:X -X GET "https://domain.freshservice.com/api/v2/tickets/1"`,
		},
		{
			Name:        "List Tickets",
			Description: "Get a list of all tickets with optional filtering",
			Method:      "GET",
			Path:        "/api/v2/tickets",
			Parameters: []Parameter{
				{Name: "page", Type: TypeInteger, Description: "Page number for pagination", Required: false, Default: strptr("1")},
				{Name: "per_page", Type: TypeInteger, Description: "Number of records per page", Required: false, Default: strptr("30")},
				{Name: "filter", Type: TypeString, Description: "Predefined filter name such as new_and_my_open or watching", Required: false},
			},
			CurlExample: `curl -v -u yourapikey:X -X GET "https://domain.freshservice.com/api/v2/tickets?page=1&per_page=30"`,
		},
		{
			Name:        "Update Ticket",
			Description: "Update an existing ticket",
			Method:      "PUT",
			Path:        "/api/v2/tickets/{id}",
			Parameters: []Parameter{
				{Name: "id", Type: TypeInteger, Description: "Ticket ID", Required: true},
				{Name: "subject", Type: TypeString, Description: "Subject of the ticket", Required: false},
				{Name: "priority", Type: TypeInteger, Description: "Priority of the ticket (1-4)", Required: false},
				{Name: "status", Type: TypeInteger, Description: "Status of the ticket (2-5)", Required: false},
			},
			CurlExample: `curl -v -u yourapikey:X -H "Content-Type: application/json" -d '{"priority":2,"status":3}' -X PUT "https://domain.freshservice.com/api/v2/tickets/1"`,
		},
		{
			Name:        "Delete Ticket",
			Description: "Delete a ticket permanently",
			Method:      "DELETE",
			Path:        "/api/v2/tickets/{id}",
			Parameters: []Parameter{
				{Name: "id", Type: TypeInteger, Description: "Ticket ID", Required: true},
			},
			CurlExample: `curl -v -u yourapikey:X -X DELETE "https://domain.freshservice.com/api/v2/tickets/1"`,
		},
	}
}

func strptr(s string) *string {
	return &s
}
