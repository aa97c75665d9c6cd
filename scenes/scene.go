package scenes

import (
	"github.com/automoto/uitween/loading"
	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/tween"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Services are the long-lived objects every scene shares.
type Services struct {
	Log        logx.Logger
	Clock      *tween.Clock
	Loader     *loading.Manager
	ConfigPath string // watched for changes when set
}
