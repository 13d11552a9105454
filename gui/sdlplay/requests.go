// This file is part of vgablur.
//
// vgablur is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgablur is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgablur.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"github.com/jetsetilly/vgablur/curated"
)

// FeatureReq is used to request the setting of a window feature.
type FeatureReq string

// List of valid feature requests. The argument types are noted.
const (
	ReqSetVisibility    FeatureReq = "ReqSetVisibility"    // bool
	ReqToggleVisibility FeatureReq = "ReqToggleVisibility" // none
	ReqSetScale         FeatureReq = "ReqSetScale"         // float32
)

// UnsupportedRequest is the pattern for an unknown or malformed feature
// request.
const UnsupportedRequest = "sdlplay: unsupported feature request: %v"

type featureRequest struct {
	request FeatureReq
	args    []interface{}
}

// SetFeature requests a change to the window. The request is serviced on the
// next call to Service() so SetFeature() must not be called from the main
// thread.
func (scr *SdlPlay) SetFeature(request FeatureReq, args ...interface{}) error {
	scr.features <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// SetFeatureNow is the same as SetFeature() but for use from the main
// thread. The request is serviced immediately.
func (scr *SdlPlay) SetFeatureNow(request FeatureReq, args ...interface{}) error {
	scr.serviceFeatureRequest(featureRequest{request: request, args: args})
	return <-scr.featureErr
}

func (scr *SdlPlay) serviceFeatureRequest(req featureRequest) {
	// type assertion errors on the args are caught here
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- curated.Errorf(UnsupportedRequest, r)
		}
	}()

	var err error

	switch req.request {
	case ReqSetVisibility:
		scr.showWindow(req.args[0].(bool))

	case ReqToggleVisibility:
		scr.showWindow(!scr.IsVisible())

	case ReqSetScale:
		err = scr.setScaling(req.args[0].(float32))

	default:
		err = curated.Errorf(UnsupportedRequest, req.request)
	}

	scr.featureErr <- err
}
