package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kod2ulz/gostart/api"
	"github.com/sirupsen/logrus"
)

type mpesaLogger struct {
	*logrus.Entry
}

func (l *mpesaLogger) getRequestID(ctx context.Context) (out uuid.UUID) {
	var ok bool
	var err error
	if val := ctx.Value(api.RequestID); val != nil {
		if out, ok = val.(uuid.UUID); ok {
			return
		} else if out, err = uuid.Parse(fmt.Sprint(val)); err == nil {
			return
		}
	}
	return uuid.New()
}

func (l mpesaLogger) Request(requestId uuid.UUID, method, url string, body any) {
	l.WithFields(logrus.Fields{
		"requestId": requestId,
		"method":    method,
		"url":       url,
		"body":      body,
	}).Debug("mpesa api request")
}

func (l mpesaLogger) Response(requestId uuid.UUID, code int, body any) {
	l.WithFields(logrus.Fields{
		"requestId": requestId,
		"status":    code,
		"body":      body,
	}).Debug("mpesa api response")
}
