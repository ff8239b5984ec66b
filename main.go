package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kod2ulz/gostart/app"
	"github.com/kod2ulz/gostart/utils"
	"github.com/sirupsen/logrus"

	"github.com/sokopay/mpesa/api"
	mpesa "github.com/sokopay/mpesa/client"
)

func main() {
	godotenv.Load()
	a := app.Init()
	ctx, log := a.Ctx(), a.Log()

	conf := mpesa.NewMpesaClientConfig()
	mpesaClient, err := mpesa.MpesaClient(ctx, log.Entry, mpesa.WithMpesaConfig(conf))
	utils.Error.Fail(log.Entry, err, "failed to initialise mpesa client")

	mpesaAPI, err := api.Mpesa(ctx, log.Entry, api.WithMpesaClient(mpesaClient))
	utils.Error.Fail(log.Entry, err, "failed to initialise mpesa api")

	env := utils.Env.Helper("MPESA_DEMO")
	callbackAddr := env.Get("CALLBACK_ADDR", ":8090").String()
	callbackHost := env.Get("CALLBACK_HOST", "https://example.dev").String()

	res, err := mpesaAPI.B2c(ctx, api.B2cRequest{
		InitiatorName:   env.Get("INITIATOR_NAME", "testapi496").String(),
		CommandID:       api.CommandBusinessPayment,
		Amount:          1000,
		PartyA:          env.Get("SHORT_CODE", "600496").String(),
		PartyB:          env.Get("PARTY_B", "254708374149").String(),
		Remarks:         "demo payout",
		QueueTimeOutURL: callbackHost + "/mpesa/timeout",
		ResultURL:       callbackHost + "/mpesa/result",
		Occasion:        "Test",
	})
	utils.Error.Log(log.Entry, err, "b2c request encountered error")
	log.WithField("res", res).Info()

	// sink for the asynchronous result/timeout callbacks referenced above
	router := gin.Default()
	router.POST("/mpesa/result", callbackHandler(log.Entry, "result"))
	router.POST("/mpesa/timeout", callbackHandler(log.Entry, "timeout"))
	utils.Error.Fail(log.Entry, router.Run(callbackAddr), "callback server exited")
}

func callbackHandler(log *logrus.Entry, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			log.WithError(err).Error("failed to parse mpesa callback")
			c.JSON(http.StatusBadRequest, gin.H{"ResultCode": 1, "ResultDesc": "Rejected"})
			return
		}
		log.WithField("kind", kind).WithField("body", body).Info("received mpesa callback")
		c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
	}
}
