package main

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	xlogrus "github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/sirupsen/logrus"
	"github.com/xaionaro-go/indexsafe/cmd/indexsafectl/commands"
)

func main() {
	ll := logrus.New()
	ll.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	l := xlogrus.New(ll).WithLevel(logger.LevelTrace)
	ctx := logger.CtxWithLogger(context.Background(), l)

	err := commands.Root.ExecuteContext(ctx)
	if err != nil {
		logger.Panic(ctx, err)
	}
}
