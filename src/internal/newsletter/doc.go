// Package newsletter resolves configured newsletter list names to list descriptors.
//
// A Collection is built once from the configuration and is read-only
// afterwards, so it can be shared between goroutines without locking.
// FindByName maps a list name to a List; the empty name selects the
// configured default list:
//
//	lists, err := newsletter.CreateFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//	list, err := lists.FindByName("")
//	var invalid *newsletter.InvalidListError
//	if errors.As(err, &invalid) && invalid.Reason == newsletter.ReasonDefaultMisconfigured {
//	    // default_list_name does not match any configured list
//	}
//
// The default list name is validated lazily: CreateFromConfig accepts an
// unknown default, and the error surfaces on the first FindByName("") call.
package newsletter
