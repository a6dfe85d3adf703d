package service

import "errors"

var (
	ErrMissingClientCert = errors.New("customProperties has no client certificate path")

	ErrFriendlyName   = errors.New("error while reading friendlyName")
	ErrCreateEndpoint = errors.New("error while creating endpoint")
	ErrUpdateEndpoint = errors.New("error while modifying endpoints data")
	ErrProvisionToken = errors.New("error while generating token")
	ErrRecordToken    = errors.New("error while saving token")
)
