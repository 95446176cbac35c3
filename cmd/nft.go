package cmd

import (
	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/spf13/cobra"
)

var nftViews = []string{"info", "transfers", "holders", "inventories"}

var nftCmd = &cobra.Command{
	Use:   "nft <address> [view]",
	Short: "Show an NFT contract",
	Long: `Show an NFT contract overview or one of its listings.

Views: info (default), transfers, holders, inventories.

Examples:
  kaiascan nft 0x...
  kaiascan nft 0x... transfers --token-id 42
  kaiascan nft 0x... inventories --keyword dragon
  kaiascan nft item 0x... 42`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: nftViews,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := "info"
		if len(args) == 2 {
			view = args[1]
		}
		if err := checkView(view, nftViews); err != nil {
			return err
		}
		nft, err := addressArg(args[0])
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		page := pagination(cmd)

		var resp *kaiascan.Raw
		switch view {
		case "info":
			resp, err = c.GetNFT(ctx, nft)
		case "transfers":
			tokenID, _ := cmd.Flags().GetString("token-id")
			resp, err = c.GetNFTTransfers(ctx, nft, kaiascan.NFTTransferOptions{
				TokenID: tokenID,
				Blocks:  blockRange(cmd),
				Page:    page,
			})
		case "holders":
			resp, err = c.GetNFTHolders(ctx, nft, page)
		case "inventories":
			keyword, _ := cmd.Flags().GetString("keyword")
			resp, err = c.GetNFTInventories(ctx, nft, keyword, page)
		}
		if err != nil {
			return err
		}
		return emit(cmd, "NFT "+view, resp)
	},
}

var nftItemCmd = &cobra.Command{
	Use:   "item <address> <tokenId>",
	Short: "Show a single NFT item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nft, err := addressArg(args[0])
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		resp, err := c.GetNFTItem(cmd.Context(), nft, args[1])
		if err != nil {
			return err
		}
		return emit(cmd, "NFT #"+args[1], resp)
	},
}

func init() {
	addPageFlags(nftCmd)
	addRangeFlags(nftCmd)
	nftCmd.Flags().String("token-id", "", "restrict transfers to one token id")
	nftCmd.Flags().String("keyword", "", "inventory search keyword")
	nftCmd.AddCommand(nftItemCmd)
}
