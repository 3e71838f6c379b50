package api

import (
	"github.com/gin-gonic/gin"

	"github.com/paintmyrock/crazyfun/internal/constants"
)

// RegisterRoutes mounts every endpoint under the /api prefix.
func RegisterRoutes(router gin.IRouter, h *Handler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)

		// Catalog and fusion lab
		apiRoutes.GET(constants.RouteEntities, h.ListEntities)
		apiRoutes.GET(constants.RouteTypeChart, h.TypeChart)
		apiRoutes.POST(constants.RouteFusionPreview, h.PreviewFusion)
		apiRoutes.POST(constants.RouteFusionDiscover, h.DiscoverFusion)
		apiRoutes.GET(constants.RouteFusionCodex, h.ListCodex)

		// Trainer profile and collection
		apiRoutes.POST(constants.RouteTrainers, h.CreateTrainer)
		apiRoutes.GET(constants.RouteTrainerByID, h.GetTrainer)
		apiRoutes.DELETE(constants.RouteTrainerByID, h.DeleteTrainer)
		apiRoutes.GET(constants.RouteTrainerCollection, h.ListCollection)
		apiRoutes.POST(constants.RouteTrainerCollection, h.AddToCollection)
		apiRoutes.DELETE(constants.RouteCollectionEntry, h.RemoveFromCollection)

		// Arena
		apiRoutes.GET(constants.RouteArenaOpponents, h.ListOpponents)
		apiRoutes.POST(constants.RouteBattles, h.StartBattle)
		apiRoutes.POST(constants.RouteBattleTurn, h.PlayTurn)
		apiRoutes.POST(constants.RouteBattleOpponent, h.OpponentTurn)
		apiRoutes.POST(constants.RouteBattleFinish, h.FinishBattle)
	}
}
