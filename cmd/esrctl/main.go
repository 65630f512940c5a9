package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errJobFailed) {
			logrus.WithError(err).Error("esrctl: falha na execução")
		}
		os.Exit(1)
	}
}
