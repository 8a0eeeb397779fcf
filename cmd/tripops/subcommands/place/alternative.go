package place

import (
	"context"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/youta-t/flarc"
)

func NewAlternative() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show an alternative place recommended for a Place.",
		struct{}{},
		placeIdArg("Id of the Place."),
		common.NewTask(AlternativeTask),
		flarc.WithDescription(`
Show an alternative place recommended for a Place, in the form:

    {
        "place_id": 1,
        "recognized": true,
        "alternative": {
            "place_name": "...",
            "address": "...",
            "distance": "1.2km",
            "eta": "15min",
            "reason": "..."
        }
    }

When the recommendation can not be read, "recognized" is false and "raw" holds it as is.
`),
	)
}

func AlternativeTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	p, err := client.GetPlace(ctx, placeId)
	if err != nil {
		return fmt.Errorf("%w: Place Id:%d", err, placeId)
	}
	return common.Print(cl.Stdout(), views.AlternativeOf(p))
}
