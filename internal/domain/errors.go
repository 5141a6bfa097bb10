package domain

import "errors"

var (
	ErrNoRepository             = errors.New("workspace is not a repository")
	ErrNoRemote                 = errors.New("repository has no usable remote")
	ErrNotSignedIn              = errors.New("no signed-in session")
	ErrNoAccessibleOrganization = errors.New("no session can access the organization")
	ErrChoiceNotFound           = errors.New("organization choice not found")
	ErrPromptDeclined           = errors.New("prompt declined")
)
