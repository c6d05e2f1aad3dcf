package main

import (
	"context"
	"github.com/kanruethaiii/backend-cat/custom/server"
	"github.com/kanruethaiii/backend-cat/custom/storage"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/romana/rlog"
	"os"
	"time"
)

func main() {
	util.LoadEnv()
	serverConfig := util.ServerConfig{}
	if _, err := serverConfig.GetConf(util.ConfigFileName()); err != nil {
		rlog.Critical("Load config failed: " + err.Error())
		os.Exit(1)
	}
	serverConfig.ApplyEnv()

	stores, err := storage.Open(serverConfig.Stores)
	if err != nil {
		rlog.Critical("Open stores failed: " + err.Error())
		os.Exit(1)
	}

	// The listener is only bound once every store answers and is migrated.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = stores.Ping(ctx)
	cancel()
	if err != nil {
		rlog.Critical("Connect stores failed: " + err.Error())
		stores.Close()
		os.Exit(1)
	}
	for _, store := range stores.List() {
		rlog.Infof("Store %s connected (%s)", store.Name, store.Driver)
	}

	// Auto migrate table schemas
	if err = stores.Migrate(); err != nil {
		rlog.Critical("Migrate stores failed: " + err.Error())
		stores.Close()
		os.Exit(1)
	}

	db, err := stores.DB()
	if err != nil {
		rlog.Critical("Build store router failed: " + err.Error())
		stores.Close()
		os.Exit(1)
	}
	dal.SetDefault(db)

	srv := server.New(serverConfig, dal.Q, stores)
	if err = srv.Serve(); err != nil {
		rlog.Error("Server failed: " + err.Error())
	}
	if err = stores.Close(); err != nil {
		rlog.Error("Close stores failed: " + err.Error())
	}
}
