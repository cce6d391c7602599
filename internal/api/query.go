package api

const charactersQuery = `query GetCharacters($page: Int!, $filter: FilterCharacter) {
  characters(page: $page, filter: $filter) {
    info { count pages next prev }
    results {
      id name status species type gender
      origin { name }
      location { name }
      image
    }
  }
}`

const characterQuery = `query GetCharacter($id: ID!) {
  character(id: $id) {
    id name status species type gender
    origin { name }
    location { name }
    image
    episode { id name episode }
    created
  }
}`

// GraphQLRequest is the JSON body posted to the GraphQL endpoint
type GraphQLRequest struct {
	OperationName string                 `json:"operationName,omitempty"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
}

// BuildCharactersRequest maps a page and filter to the list query.
// The filter variable is only present when at least one filter is set.
func BuildCharactersRequest(page int, filter Filter) GraphQLRequest {
	variables := map[string]interface{}{"page": page}
	if !filter.IsEmpty() {
		variables["filter"] = filter
	}
	return GraphQLRequest{
		OperationName: "GetCharacters",
		Query:         charactersQuery,
		Variables:     variables,
	}
}

// BuildCharacterRequest builds the detail query for one character
func BuildCharacterRequest(id string) GraphQLRequest {
	return GraphQLRequest{
		OperationName: "GetCharacter",
		Query:         characterQuery,
		Variables:     map[string]interface{}{"id": id},
	}
}
